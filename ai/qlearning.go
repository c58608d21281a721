package ai

import (
	"fmt"
	"math"
	"math/rand"

	"gridsnake/game"
)

// State rappresenta lo stato osservato dall'agente.
type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction (north, east, south, west)
}

// Action è una delle quattro direzioni assolute di movimento.
type Action int

const (
	North Action = iota
	East
	South
	West
)

// Direction converte un'azione nella direzione corrispondente del motore.
func (a Action) Direction() game.Direction {
	switch a {
	case North:
		return game.North
	case East:
		return game.East
	case South:
		return game.South
	case West:
		return game.West
	default:
		return game.NoDirection
	}
}

// Observe costruisce lo stato osservato a partire dal motore di gioco.
func Observe(e *game.Engine) State {
	head := e.Head()
	food, _ := e.Food()

	foodDir := [2]int{
		sign(food.X - head.X),
		sign(food.Y - head.Y),
	}
	foodDist := abs(food.X-head.X) + abs(food.Y-head.Y)

	dangers := [4]bool{
		e.CheckCollision(head.Shift(game.North)),
		e.CheckCollision(head.Shift(game.East)),
		e.CheckCollision(head.Shift(game.South)),
		e.CheckCollision(head.Shift(game.West)),
	}

	return State{
		RelativeFoodDir: foodDir,
		FoodDistance:    foodDist,
		DangerDirs:      dangers,
	}
}

// QTable memorizza i valori Q per coppie stato-azione.
type QTable map[string]map[Action]float64

// Agent rappresenta un agente di Q-learning tabellare.
type Agent struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
}

// NewAgent crea un nuovo agente di Q-learning.
func NewAgent() *Agent {
	return &Agent{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
	}
}

func stateKey(s State) string {
	return fmt.Sprintf("%d,%d|%t%t%t%t",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		s.DangerDirs[0], s.DangerDirs[1], s.DangerDirs[2], s.DangerDirs[3])
}

// GetAction seleziona un'azione usando una politica epsilon-greedy.
func (a *Agent) GetAction(state State) Action {
	// Esplorazione: azione casuale
	if rand.Float64() < a.Epsilon {
		return Action(rand.Intn(4))
	}

	// Sfruttamento: azione con il massimo valore Q
	return a.getBestAction(state)
}

func (a *Agent) ensureState(key string) map[Action]float64 {
	actions, exists := a.QTable[key]
	if !exists {
		actions = make(map[Action]float64)
		for action := North; action <= West; action++ {
			actions[action] = 0
		}
		a.QTable[key] = actions
	}
	return actions
}

func (a *Agent) getBestAction(state State) Action {
	actions := a.ensureState(stateKey(state))

	bestAction := North
	bestValue := math.Inf(-1)
	for action, value := range actions {
		if value > bestValue {
			bestValue = value
			bestAction = action
		}
	}
	return bestAction
}

// Update aggiorna il valore Q per la transizione osservata e restituisce
// il reward calcolato.
func (a *Agent) Update(state State, action Action, next State, events []game.Event) float64 {
	reward := a.calculateReward(state, action, next, events)

	actions := a.ensureState(stateKey(state))
	nextActions := a.ensureState(stateKey(next))

	maxNextQ := math.Inf(-1)
	for _, value := range nextActions {
		if value > maxNextQ {
			maxNextQ = value
		}
	}

	// Formula di aggiornamento del Q-learning:
	// Q(s,a) = Q(s,a) + α [r + γ * max_a' Q(s',a') - Q(s,a)]
	currentQ := actions[action]
	actions[action] = currentQ + a.LearningRate*(reward+a.Discount*maxNextQ-currentQ)

	a.TotalReward += reward

	return reward
}

// calculateReward calcola il reward della transizione: morte e pericoli
// penalizzano, cibo e avvicinamento premiano.
func (a *Agent) calculateReward(state State, action Action, next State, events []game.Event) float64 {
	for _, ev := range events {
		switch ev {
		case game.EventDie:
			return -1.0
		case game.EventEat, game.EventWin:
			return 1.0
		}
	}

	var reward float64
	if next.FoodDistance < state.FoodDistance {
		// Got closer to food
		reward = 0.5
	} else if next.FoodDistance > state.FoodDistance {
		// Got further from food
		reward = -0.3
	}

	if state.DangerDirs[action] {
		// Moved towards danger
		reward = -1.0
	}

	return reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
