package render

import (
	"bytes"
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/minigames/internal/breaker"
	"git.lost.host/meutraa/minigames/internal/config"
	"git.lost.host/meutraa/minigames/internal/game"
	"git.lost.host/meutraa/minigames/internal/rhythm"
	"git.lost.host/meutraa/minigames/internal/theme"
)

// cells records what was drawn where.
type cells struct {
	cols, rows int
	filled     map[[2]uint16]string
}

func newCells() *cells {
	return &cells{cols: 75, rows: 40, filled: map[[2]uint16]string{}}
}

func (c *cells) Init() error                                    { return nil }
func (c *cells) Deinit() error                                  { return nil }
func (c *cells) Size() (int, int)                               { return c.cols, c.rows }
func (c *cells) Clear()                                         { c.filled = map[[2]uint16]string{} }
func (c *cells) AddDecoration(col, row uint16, s string, n int) {}
func (c *cells) RenderLoop(time.Duration, func(time.Time, time.Duration) bool) {
}
func (c *cells) Fill(row, column uint16, message string) {
	c.filled[[2]uint16{row, column}] = message
}
func (c *cells) FillColor(row, column uint16, _ color.RGBA, message string) {
	c.Fill(row, column, message)
}

func (c *cells) contains(s string) bool {
	for _, m := range c.filled {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

func TestGridCell(t *testing.T) {
	g := Grid{Width: 375, Height: 667, Cols: 75, Rows: 40}
	tests := []struct {
		x, y     float64
		col, row uint16
		ok       bool
	}{
		{0, 0, 1, 1, true},
		{374.9, 666.9, 75, 40, true},
		{187.5, 333.5, 38, 21, true},
		{-1, 10, 0, 0, false},
		{10, -50, 0, 0, false},
		{375, 10, 0, 0, false},
	}
	for _, test := range tests {
		col, row, ok := g.Cell(test.x, test.y)
		if col != test.col || row != test.row || ok != test.ok {
			t.Log("point   ", test.x, test.y)
			t.Log("cell    ", col, row, ok)
			t.Log("expected", test.col, test.row, test.ok)
			t.Fail()
		}
	}
	if g.Centered(5) != 36 || g.Centered(200) != 1 {
		t.Error("centred", g.Centered(5), g.Centered(200))
	}
}

var energyTests = map[float64]string{
	0:   "[----------]",
	50:  "[#####-----]",
	100: "[##########]",
	150: "[##########]",
	-5:  "[----------]",
}

func TestEnergyBar(t *testing.T) {
	for energy, expected := range energyTests {
		if bar := EnergyBar(energy, 10); bar != expected {
			t.Errorf("energy %v = %v, want %v", energy, bar, expected)
		}
	}
}

func TestFade(t *testing.T) {
	c := Fade(color.RGBA{200, 100, 50, 255}, 0.5)
	if c != (color.RGBA{100, 50, 25, 127}) {
		t.Error(c)
	}
	if Fade(theme.White, 2) != theme.White {
		t.Error("alpha above one")
	}
}

func rhythmSession() *rhythm.Session {
	return rhythm.New(config.DefaultRhythm(), 375, 667, rhythm.Sinks{}, rand.New(rand.NewSource(1)))
}

func TestDrawRhythmPhases(t *testing.T) {
	c := newCells()
	th := &theme.DefaultTheme{}
	s := rhythmSession()

	DrawRhythm(c, th, s, []rune("dfjk"))
	if !c.contains("RHYTHM TAP") || !c.contains("> 2 normal <") {
		t.Errorf("menu = %v", c.filled)
	}

	s.Start(game.Normal)
	DrawRhythm(c, th, s, []rune("dfjk"))
	if !c.contains("Score 0") || !c.contains("BPM 120") {
		t.Errorf("hud = %v", c.filled)
	}
	layout := s.Layout()
	g := Grid{Width: 375, Height: 667, Cols: 75, Rows: 40}
	col, row, _ := g.Cell(layout.TrackX(0), layout.Center())
	if c.filled[[2]uint16{row + 1, col}] != "d" {
		t.Errorf("key label missing at %v,%v", row+1, col)
	}
}

func TestDrawBreaker(t *testing.T) {
	c := newCells()
	s := breaker.New(config.DefaultBreaker(), 375, 667, breaker.Sinks{}, rand.New(rand.NewSource(1)))
	DrawBreaker(c, &theme.DefaultTheme{}, s)
	if !c.contains("space to shoot") {
		t.Errorf("ready = %v", c.filled)
	}
	s.Start()
	DrawBreaker(c, &theme.DefaultTheme{}, s)
	if !c.contains("Round 1") || !c.contains(shooterSym) || !c.contains(aimSym) {
		t.Errorf("playing = %v", c.filled)
	}
	for _, block := range s.Blocks() {
		if block.Value != 1 {
			t.Errorf("block value = %v", block.Value)
		}
	}
}

func TestTerminalRendererFill(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out, Fd: -1}
	r.Fill(2, 3, "x")
	r.FillColor(4, 5, color.RGBA{1, 2, 3, 255}, "y")
	r.AddDecoration(1, 1, "*", 1)
	r.tickDecorations()
	r.flush()
	expected := "\033[2;3Hx\033[4;5H\033[38;2;1;2;3my\033[0m\033[1;1H*"
	if out.String() != expected {
		t.Errorf("%q", out.String())
	}
	r.tickDecorations()
	if len(r.decorations) != 0 {
		t.Error("decoration outlived its frames")
	}
	if cols, rows := r.Size(); cols != 80 || rows != 24 {
		t.Error("size fallback", cols, rows)
	}
}

func TestTinyTerminalStaysOnScreen(t *testing.T) {
	c := newCells()
	c.rows = 4
	th := &theme.DefaultTheme{}
	check := func(name string) {
		if len(c.filled) == 0 {
			t.Errorf("%v: nothing drawn", name)
		}
		for cell := range c.filled {
			if cell[0] < 1 || int(cell[0]) > c.rows {
				t.Errorf("%v: row %v outside %v rows", name, cell[0], c.rows)
			}
		}
	}

	DrawRhythm(c, th, rhythmSession(), []rune("dfjk"))
	check("rhythm menu")
	DrawBreaker(c, th, breaker.New(config.DefaultBreaker(), 375, 667, breaker.Sinks{}, rand.New(rand.NewSource(1))))
	check("breaker ready")

	g := Grid{Cols: 10, Rows: 4}
	if g.Row(-2) != 1 || g.Row(9) != 4 || g.Row(3) != 3 {
		t.Error("row clamp", g.Row(-2), g.Row(9), g.Row(3))
	}
}
