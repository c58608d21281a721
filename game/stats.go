package game

import (
	"sort"
	"sync"
	"time"
)

// GameStats contiene le partite giocate nella sessione corrente e
// fornisce metodi per ottenere statistiche come punteggio medio, durata
// media, ecc.
type GameStats struct {
	games []GameRecord
	mutex sync.RWMutex
}

// GameRecord rappresenta i dati di una singola partita.
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Won       bool
}

// NewGameStats crea una nuova istanza vuota di GameStats.
func NewGameStats() *GameStats {
	return &GameStats{
		games: make([]GameRecord, 0),
	}
}

// AddGame aggiunge una nuova partita alle statistiche.
func (s *GameStats) AddGame(score int, won bool, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.games = append(s.games, GameRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
		Won:       won,
	})
}

// LastGame restituisce l'ultima partita registrata.
func (s *GameStats) LastGame() (GameRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return GameRecord{}, false
	}
	return s.games[len(s.games)-1], true
}

// GamesPlayed restituisce il numero totale di partite giocate.
func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.games)
}

// AverageScore calcola e restituisce il punteggio medio.
func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}

	var total float64
	for _, g := range s.games {
		total += float64(g.Score)
	}
	return total / float64(len(s.games))
}

// MedianScore calcola e restituisce il punteggio mediano.
func (s *GameStats) MedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}

	scores := make([]int, len(s.games))
	for i, g := range s.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)

	if len(scores)%2 == 0 {
		return float64(scores[len(scores)/2-1]+scores[len(scores)/2]) / 2
	}
	return float64(scores[len(scores)/2])
}

// MaxScore restituisce il punteggio massimo registrato.
func (s *GameStats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, g := range s.games {
		if g.Score > maxScore {
			maxScore = g.Score
		}
	}
	return maxScore
}

// AverageDuration calcola e restituisce la durata media delle partite
// (in secondi).
func (s *GameStats) AverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}

	var total float64
	for _, g := range s.games {
		total += g.EndTime.Sub(g.StartTime).Seconds()
	}
	return total / float64(len(s.games))
}

// MaxDuration restituisce la durata massima di una partita (in secondi).
func (s *GameStats) MaxDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var maxDuration float64
	for _, g := range s.games {
		if d := g.EndTime.Sub(g.StartTime).Seconds(); d > maxDuration {
			maxDuration = d
		}
	}
	return maxDuration
}
