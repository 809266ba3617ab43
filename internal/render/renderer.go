package render

import (
	"image/color"
	"time"
)

// Renderer draws text cells on a terminal. Rows and columns are 1-based.
type Renderer interface {
	Init() error
	Deinit() error
	Size() (cols, rows int)
	Clear()
	AddDecoration(col, row uint16, content string, frames int)
	RenderLoop(period time.Duration, render func(startTime time.Time, duration time.Duration) bool)
	Fill(row, column uint16, message string)
	FillColor(row, column uint16, color color.RGBA, message string)
}
