package render

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type TerminalRenderer struct {
	Out io.Writer
	Fd  int

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Fd: int(os.Stdout.Fd())}
}

func (r *TerminalRenderer) Init() error {
	state, err := term.MakeRaw(r.Fd)
	if nil != err {
		return err
	}
	r.restoreState = state

	_, err = io.WriteString(r.Out,
		"\033[?1049h"+ // Enable alternate buffer
			"\033[?25l"+ // Make the cursor invisible
			"\033[J", // Clear the screen
	)
	return err
}

func (r *TerminalRenderer) Deinit() error {
	io.WriteString(r.Out,
		"\033[?1049l"+ // Disable alternate buffer
			"\033[?25h", // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.Fd, r.restoreState)
}

// Size falls back to 80x24 when the output is not a terminal.
func (r *TerminalRenderer) Size() (int, int) {
	cols, rows, err := term.GetSize(r.Fd)
	if nil != err || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

func (r *TerminalRenderer) Clear() {
	r.buffer.WriteString("\033[H\033[2J")
}

func (r *TerminalRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

// tickDecorations draws live decorations over the frame and ages them.
func (r *TerminalRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *TerminalRenderer) RenderLoop(
	period time.Duration,
	render func(startTime time.Time, duration time.Duration) bool,
) {
	cont := true
	startTime := time.Now()
	for cont {
		now := time.Now()
		duration := now.Sub(startTime)
		deadline := now.Add(period)

		cont = render(startTime, duration)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *TerminalRenderer) Fill(row, column uint16, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *TerminalRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *TerminalRenderer) flush() {
	io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
}
