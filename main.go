package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/ui"
)

func main() {
	speed := flag.Int("speed", 500, "Initial tick interval in milliseconds")
	width := flag.Int("width", 30, "Grid width in cells")
	height := flag.Int("height", 30, "Grid height in cells")
	aiMode := flag.Bool("ai", false, "Let the Q-learning agent play")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := validateFlags(*width, *height, *speed); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(800, 880, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	session := ui.NewSession(*width, *height, time.Duration(*speed)*time.Millisecond)
	renderer := ui.NewRenderer()

	agent := ai.NewAgent()
	if *aiMode {
		session.Paused = false
	}

	slog.Info("starting session",
		"grid_width", *width, "grid_height", *height,
		"interval", session.Interval, "ai", *aiMode,
		"game_id", session.Engine.ID())

	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		session.HandleInput()

		if time.Since(lastUpdate) >= session.Interval {
			lastUpdate = time.Now()

			var events []game.Event
			if *aiMode && !session.Paused {
				events = tickAgent(session, agent)
			} else {
				events = session.Tick()
			}

			for _, ev := range events {
				if ev == game.EventDie || ev == game.EventWin {
					if rec, ok := session.Stats.LastGame(); ok {
						slog.Info("game finished",
							"event", ev.String(),
							"score", rec.Score,
							"duration", rec.EndTime.Sub(rec.StartTime),
							"games_played", session.Stats.GamesPlayed())
					}
					if *aiMode {
						// The agent keeps its table across games.
						session.Paused = false
					}
				}
			}
		}

		renderer.Draw(session)
	}

	slog.Info("session finished",
		"games_played", session.Stats.GamesPlayed(),
		"avg_score", session.Stats.AverageScore(),
		"max_score", session.Stats.MaxScore())
}

// validateFlags controlla che griglia e velocità abbiano valori positivi.
func validateFlags(width, height, speed int) error {
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}
	if height <= 0 {
		return fmt.Errorf("height must be positive, got %d", height)
	}
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", speed)
	}
	return nil
}

// tickAgent fa scegliere la mossa all'agente e aggiorna i valori Q con la
// transizione osservata.
func tickAgent(session *ui.Session, agent *ai.Agent) []game.Event {
	engine := session.Engine

	state := ai.Observe(engine)
	action := agent.GetAction(state)
	session.SetDirection(action.Direction())

	events := session.Tick()

	// On death the refused move leaves the old engine untouched, so it
	// still describes the terminal state.
	next := ai.Observe(engine)
	agent.Update(state, action, next, events)

	for _, ev := range events {
		if ev == game.EventDie || ev == game.EventWin {
			agent.GamesPlayed++
		}
	}

	return events
}
