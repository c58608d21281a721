package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// OutOfBoundsError segnala un accesso a un punto fuori dalla griglia.
type OutOfBoundsError struct {
	Point Point
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("point (%d, %d) is out of bounds", e.Point.X, e.Point.Y)
}

// Engine è il motore di gioco: possiede la griglia, la posizione del
// serpente e del cibo, e la logica di movimento/collisione/punteggio
// eseguita una volta per tick. Una partita terminata va scartata e
// sostituita con un nuovo Engine.
type Engine struct {
	id        string
	width     int
	height    int
	cells     []Cell
	head      Point
	tail      Point
	length    int
	food      Point
	hasFood   bool
	steps     int
	startTime time.Time
	rng       *rand.Rand
}

// NewEngine crea una nuova partita con il serpente al centro della
// griglia e un cibo piazzato su una cella vuota casuale.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		id:        uuid.New().String(),
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		startTime: time.Now(),
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}

	e.head = Point{X: width / 2, Y: height / 2}
	e.tail = e.head
	e.length = 1
	e.cells[e.index(e.head)] = CellNoDirection

	e.PlaceFood()

	return e
}

func (e *Engine) index(p Point) int {
	return p.Y*e.width + p.X
}

func (e *Engine) inBounds(p Point) bool {
	return p.X >= 0 && p.X < e.width && p.Y >= 0 && p.Y < e.height
}

// At restituisce il valore della cella nel punto dato. L'errore è un
// *OutOfBoundsError se il punto è fuori dalla griglia.
func (e *Engine) At(p Point) (Cell, error) {
	if !e.inBounds(p) {
		return CellEmpty, &OutOfBoundsError{Point: p}
	}
	return e.cells[e.index(p)], nil
}

// CheckCollision reports whether moving the head onto p would kill the
// snake: out of bounds or any occupied non-food cell.
func (e *Engine) CheckCollision(p Point) bool {
	if !e.inBounds(p) {
		return true
	}
	switch e.cells[e.index(p)] {
	case CellEmpty, CellFood:
		return false
	default:
		return true
	}
}

// Move avanza il serpente di una cella nella direzione data e restituisce
// gli eventi prodotti dalla mossa. Su collisione restituisce EventDie e
// lascia lo stato invariato.
func (e *Engine) Move(dir Direction) []Event {
	var events []Event

	newHead := e.head.Shift(dir)
	if e.CheckCollision(newHead) {
		return append(events, EventDie)
	}

	e.steps++
	ate := e.cells[e.index(newHead)] == CellFood

	// The old head cell records the direction it was left with so the
	// tail can follow the path later.
	e.cells[e.index(e.head)] = cellForDirection(dir)
	e.head = newHead

	if ate {
		e.length++
		events = append(events, EventEat)
		// The eaten cell still holds CellFood here, so the sampler
		// cannot pick it again.
		if !e.PlaceFood() {
			events = append(events, EventWin)
		}
	} else {
		tailDir, _ := e.cells[e.index(e.tail)].bodyDirection()
		newTail := e.tail.Shift(tailDir)
		e.cells[e.index(e.tail)] = CellEmpty
		e.tail = newTail
	}

	e.cells[e.index(newHead)] = cellForDirection(dir)

	return events
}

// PlaceFood piazza il cibo su una cella vuota scelta a caso tramite
// campionamento per rigetto. Restituisce false se non ci sono celle
// libere (griglia piena, partita vinta).
func (e *Engine) PlaceFood() bool {
	if e.length >= e.width*e.height {
		e.hasFood = false
		return false
	}

	for {
		p := Point{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if e.cells[e.index(p)] != CellEmpty {
			continue
		}
		e.cells[e.index(p)] = CellFood
		e.food = p
		e.hasFood = true
		return true
	}
}

// SetFood sposta il cibo sulla cella indicata, che deve essere vuota o
// già contenere il cibo. Utile per test e scenari deterministici.
func (e *Engine) SetFood(p Point) error {
	if !e.inBounds(p) {
		return &OutOfBoundsError{Point: p}
	}
	if c := e.cells[e.index(p)]; c != CellEmpty && c != CellFood {
		return fmt.Errorf("cell (%d, %d) is occupied", p.X, p.Y)
	}
	if e.hasFood {
		e.cells[e.index(e.food)] = CellEmpty
	}
	e.cells[e.index(p)] = CellFood
	e.food = p
	e.hasFood = true
	return nil
}

// Body restituisce le celle occupate dal serpente, dalla coda alla testa,
// seguendo le direzioni memorizzate nelle celle.
func (e *Engine) Body() []Point {
	body := make([]Point, 0, e.length)
	p := e.tail
	for i := 0; i < e.length-1; i++ {
		body = append(body, p)
		d, ok := e.cells[e.index(p)].bodyDirection()
		if !ok {
			break
		}
		p = p.Shift(d)
	}
	return append(body, p)
}

// ID restituisce l'identificativo univoco della partita.
func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Width() int {
	return e.width
}

func (e *Engine) Height() int {
	return e.height
}

func (e *Engine) Head() Point {
	return e.head
}

func (e *Engine) Tail() Point {
	return e.tail
}

// Food restituisce la posizione corrente del cibo. ok è false quando la
// griglia è piena e non c'è cibo sul tabellone.
func (e *Engine) Food() (p Point, ok bool) {
	return e.food, e.hasFood
}

// Length restituisce la lunghezza corrente del serpente.
func (e *Engine) Length() int {
	return e.length
}

// Score restituisce il punteggio della partita (lunghezza - 1).
func (e *Engine) Score() int {
	return e.length - 1
}

// Steps restituisce il numero di mosse eseguite.
func (e *Engine) Steps() int {
	return e.steps
}

func (e *Engine) StartTime() time.Time {
	return e.startTime
}

// ElapsedTime restituisce la durata corrente della partita in secondi.
func (e *Engine) ElapsedTime() float64 {
	return time.Since(e.startTime).Seconds()
}
