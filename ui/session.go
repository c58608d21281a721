package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

const (
	// MinInterval è l'intervallo di tick minimo raggiungibile mangiando.
	MinInterval = 10 * time.Millisecond

	intervalStep = 10 * time.Millisecond
)

// Session raccoglie lo stato del presenter: motore di gioco, direzione
// corrente, pausa, intervallo di tick e statistiche di sessione.
type Session struct {
	Engine     *game.Engine
	Dir        game.Direction
	Interval   time.Duration
	Paused     bool
	Stats      *game.GameStats
	StatusText string

	width           int
	height          int
	initialInterval time.Duration
}

// NewSession crea una sessione con una partita pronta, in pausa.
func NewSession(width, height int, interval time.Duration) *Session {
	s := &Session{
		Stats:           game.NewGameStats(),
		width:           width,
		height:          height,
		initialInterval: interval,
	}
	s.Reset()
	return s
}

// Reset scarta la partita corrente e ne prepara una nuova, in pausa, con
// direzione iniziale nord e velocità iniziale.
func (s *Session) Reset() {
	s.Engine = game.NewEngine(s.width, s.height)
	s.Dir = game.North
	s.Interval = s.initialInterval
	s.Paused = true
}

// HandleInput legge i tasti premuti e aggiorna direzione e pausa. La
// direzione scelta viene applicata dal prossimo tick, mai direttamente
// alla griglia.
func (s *Session) HandleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeyUp):
		s.SetDirection(game.North)
	case rl.IsKeyPressed(rl.KeyD) || rl.IsKeyPressed(rl.KeyRight):
		s.SetDirection(game.East)
	case rl.IsKeyPressed(rl.KeyS) || rl.IsKeyPressed(rl.KeyDown):
		s.SetDirection(game.South)
	case rl.IsKeyPressed(rl.KeyA) || rl.IsKeyPressed(rl.KeyLeft):
		s.SetDirection(game.West)
	case rl.IsKeyPressed(rl.KeySpace):
		s.Paused = !s.Paused
	}
}

// SetDirection imposta la direzione per il prossimo tick.
func (s *Session) SetDirection(d game.Direction) {
	// Prevent 180-degree turns when the snake has a body to run into.
	if s.Engine.Length() > 1 && d == s.Dir.Opposite() {
		return
	}
	s.Dir = d
}

// Tick esegue una mossa del motore e reagisce agli eventi: mangiare
// accelera il gioco, morte e vittoria chiudono la partita e ne avviano
// una nuova in pausa.
func (s *Session) Tick() []game.Event {
	if s.Paused {
		return nil
	}

	events := s.Engine.Move(s.Dir)
	for _, ev := range events {
		switch ev {
		case game.EventEat:
			if s.Interval-intervalStep >= MinInterval {
				s.Interval -= intervalStep
			}
		case game.EventDie:
			s.endGame(false)
		case game.EventWin:
			s.endGame(true)
		}
	}
	return events
}

func (s *Session) endGame(won bool) {
	e := s.Engine
	s.Stats.AddGame(e.Score(), won, e.StartTime(), time.Now())

	if won {
		s.StatusText = fmt.Sprintf("You won! Score: %d", e.Score())
	} else {
		s.StatusText = fmt.Sprintf("Game over! Score: %d", e.Score())
	}

	s.Reset()
}
