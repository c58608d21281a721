package game

// Point rappresenta una cella della griglia in coordinate (X, Y).
type Point struct {
	X, Y int
}

// Shift restituisce il punto spostato di una cella nella direzione data.
func (p Point) Shift(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction rappresenta una direzione cardinale di movimento.
type Direction int

const (
	NoDirection Direction = iota // 0
	North                        // 1
	East                         // 2
	South                        // 3
	West                         // 4
)

// ToPoint converte una Direction in un vettore di spostamento
func (d Direction) ToPoint() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1} // Su (decrementa Y)
	case East:
		return Point{X: 1, Y: 0} // Destra (incrementa X)
	case South:
		return Point{X: 0, Y: 1} // Giù (incrementa Y)
	case West:
		return Point{X: -1, Y: 0} // Sinistra (decrementa X)
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite restituisce la direzione opposta.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Cell è il valore memorizzato in una cella della griglia. Le celle
// occupate dal corpo memorizzano la direzione con cui sono state
// attraversate: seguendo le direzioni dalla coda si ricostruisce il
// corpo senza una lista esplicita.
type Cell int

const (
	CellEmpty Cell = iota
	CellNorth
	CellEast
	CellSouth
	CellWest
	CellNoDirection
	CellFood
)

// cellForDirection converte una direzione nel valore di cella occupata.
func cellForDirection(d Direction) Cell {
	switch d {
	case North:
		return CellNorth
	case East:
		return CellEast
	case South:
		return CellSouth
	case West:
		return CellWest
	default:
		return CellNoDirection
	}
}

// bodyDirection restituisce la direzione memorizzata in una cella occupata
// dal corpo. ok è false per celle vuote o contenenti cibo.
func (c Cell) bodyDirection() (dir Direction, ok bool) {
	switch c {
	case CellNorth:
		return North, true
	case CellEast:
		return East, true
	case CellSouth:
		return South, true
	case CellWest:
		return West, true
	case CellNoDirection:
		return NoDirection, true
	default:
		return NoDirection, false
	}
}

// Event segnala al presenter l'esito di una mossa.
type Event int

const (
	EventEat Event = iota
	EventDie
	EventWin
)

func (e Event) String() string {
	switch e {
	case EventEat:
		return "eat"
	case EventDie:
		return "die"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}
