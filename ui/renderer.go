package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

const borderPadding = 10 // Padding around game area

const statsRowHeight = 30

var snakeColor = rl.Color{R: 0, G: 180, B: 80, A: 255}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw disegna griglia, serpente, cibo e la riga delle statistiche.
func (r *Renderer) Draw(s *Session) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	e := s.Engine
	fontSize := r.screenHeight / 45

	// Calculate cell size based on available space and grid dimensions
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 3) - statsRowHeight
	cellW := availableWidth / int32(e.Width())
	cellH := availableHeight / int32(e.Height())
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(e.Width())
	r.totalGridHeight = r.cellSize * int32(e.Height())
	r.offsetX = borderPadding
	r.offsetY = borderPadding

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	// Draw snake body
	body := e.Body()
	for i, p := range body {
		color := snakeColor
		if i == 0 { // Tail
			color = rl.White
		} else if i == len(body)-1 { // Head
			color = rl.Color{
				R: uint8(min(int32(float32(snakeColor.R)*1.3), 255)),
				G: uint8(min(int32(float32(snakeColor.G)*1.3), 255)),
				B: uint8(min(int32(float32(snakeColor.B)*1.3), 255)),
				A: 255,
			}
		}
		r.drawCell(p, color)
	}
	r.drawHeading(e.Head(), s.Dir)

	// Draw food
	if food, ok := e.Food(); ok {
		r.drawCell(food, rl.Red)
	}

	// Draw stats with fixed spacing
	yOffset := r.offsetY + r.totalGridHeight + borderPadding
	xOffset := r.offsetX
	spacing := int32(180)

	rl.DrawText(fmt.Sprintf("Score: %d", e.Score()), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Games: %d", s.Stats.GamesPlayed()), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Avg Score: %.1f", s.Stats.AverageScore()), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Max Score: %d", s.Stats.MaxScore()), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing
	rl.DrawText(fmt.Sprintf("Avg Duration: %.1fs", s.Stats.AverageDuration()), xOffset, yOffset, fontSize, rl.Purple)

	if s.Paused {
		r.drawOverlay(s, fontSize)
	}

	rl.EndDrawing()
}

// drawOverlay mostra l'esito dell'ultima partita e l'invito a ripartire.
func (r *Renderer) drawOverlay(s *Session, fontSize int32) {
	centerY := r.offsetY + r.totalGridHeight/2

	if s.StatusText != "" {
		w := rl.MeasureText(s.StatusText, fontSize*2)
		rl.DrawText(s.StatusText, r.offsetX+(r.totalGridWidth-w)/2, centerY-fontSize*3, fontSize*2, rl.Yellow)
	}

	msg := "Press SPACE to start"
	w := rl.MeasureText(msg, fontSize)
	rl.DrawText(msg, r.offsetX+(r.totalGridWidth-w)/2, centerY, fontSize, rl.RayWhite)
}

func (r *Renderer) drawCell(p game.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHeading disegna sulla testa un triangolo orientato nella direzione
// di marcia.
func (r *Renderer) drawHeading(head game.Point, dir game.Direction) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	switch dir {
	case game.East:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case game.West:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case game.South:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case game.North:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}
