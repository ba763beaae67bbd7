// Package terminal draws the level and reads the keyboard through tcell.
package terminal

import (
	"cmp"
	"slices"
	"sync"

	"github.com/bsgelman/Marble-Madness-Game/internal/world"
	"github.com/gdamore/tcell/v2"
)

type glyph struct {
	r     rune
	style tcell.Style
}

var (
	plain  = tcell.StyleDefault
	glyphs = map[world.Kind]glyph{
		world.KindPlayer:          {'@', plain.Foreground(tcell.ColorYellow).Bold(true)},
		world.KindRageBot:         {'R', plain.Foreground(tcell.ColorRed).Bold(true)},
		world.KindRegularThiefBot: {'t', plain.Foreground(tcell.ColorFuchsia)},
		world.KindMeanThiefBot:    {'T', plain.Foreground(tcell.ColorFuchsia).Bold(true)},
		world.KindThiefBotFactory: {'F', plain.Foreground(tcell.ColorGray)},
		world.KindPea:             {'·', plain.Foreground(tcell.ColorLime)},
		world.KindExit:            {'X', plain.Foreground(tcell.ColorAqua).Bold(true)},
		world.KindWall:            {'█', plain.Foreground(tcell.ColorSilver)},
		world.KindMarble:          {'o', plain.Foreground(tcell.ColorWhite).Bold(true)},
		world.KindPit:             {'O', plain.Foreground(tcell.ColorNavy)},
		world.KindCrystal:         {'*', plain.Foreground(tcell.ColorAqua)},
		world.KindExtraLife:       {'+', plain.Foreground(tcell.ColorGreen).Bold(true)},
		world.KindRestoreHealth:   {'h', plain.Foreground(tcell.ColorGreen)},
		world.KindAmmo:            {'a', plain.Foreground(tcell.ColorOlive)},
	}
	// lower draws first so agents stay on top of items
	layers = map[world.Kind]int{
		world.KindExit:          0,
		world.KindPit:           0,
		world.KindCrystal:       1,
		world.KindExtraLife:     1,
		world.KindRestoreHealth: 1,
		world.KindAmmo:          1,
		world.KindPea:           3,
		world.KindPlayer:        4,
	}
)

func layer(k world.Kind) int {
	if l, ok := layers[k]; ok {
		return l
	}
	return 2
}

// Glyph returns the rune used for kind k.
func Glyph(k world.Kind) rune { return glyphs[k].r }

// View renders a level and the status line onto a tcell screen. The status
// line is row 0; grid row y is drawn at screen row 1+height-1-y.
type View struct {
	screen tcell.Screen

	mu      sync.Mutex
	status  string
	message string
}

func NewView(s tcell.Screen) *View {
	return &View{screen: s}
}

// SetStatus records the status line shown by the next Draw.
func (v *View) SetStatus(text string) {
	v.mu.Lock()
	v.status = text
	v.mu.Unlock()
}

// SetMessage shows a banner under the grid; empty clears it.
func (v *View) SetMessage(text string) {
	v.mu.Lock()
	v.message = text
	v.mu.Unlock()
}

// Draw paints every visible live actor of ws.
func (v *View) Draw(ws *world.State) {
	v.mu.Lock()
	status, message := v.status, v.message
	v.mu.Unlock()

	s := v.screen
	s.Clear()
	v.text(0, 0, status, plain.Bold(true))

	if ws != nil {
		h := ws.Height()
		var visible []*world.Actor
		ws.Each(func(a *world.Actor) {
			if a.Visible {
				visible = append(visible, a)
			}
		})
		slices.SortStableFunc(visible, func(a, b *world.Actor) int {
			return cmp.Compare(layer(a.Kind), layer(b.Kind))
		})
		for _, a := range visible {
			if g, ok := glyphs[a.Kind]; ok {
				s.SetContent(a.X, 1+h-1-a.Y, g.r, nil, g.style)
			}
		}
		if message != "" {
			v.text(0, h+2, message, plain.Reverse(true))
		}
	} else if message != "" {
		v.text(0, 2, message, plain.Reverse(true))
	}
	s.Show()
}

func (v *View) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
