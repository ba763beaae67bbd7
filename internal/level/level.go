// Package level reads level grids from text files.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrNotFound     = errors.New("level not found")
	ErrMalformed    = errors.New("level malformed")
	ErrNoMoreLevels = errors.New("no more levels")
)

// MaxLevel is the highest level number a file name can carry.
const MaxLevel = 99

// Code is a placement code for one tile.
type Code byte

const (
	Empty            Code = ' '
	Player           Code = '@'
	Exit             Code = 'x'
	Crystal          Code = '*'
	Wall             Code = '#'
	Marble           Code = 'b'
	Pit              Code = 'O'
	HorizRageBot     Code = 'h'
	VertRageBot      Code = 'v'
	ThiefBotFactory  Code = '1'
	MeanThiefFactory Code = '2'
	ExtraLife        Code = 'e'
	RestoreHealth    Code = 'r'
	Ammo             Code = 'a'
)

func parseCode(c byte) (Code, bool) {
	switch Code(c) {
	case Empty, Player, Exit, Crystal, Wall, Marble, Pit, HorizRageBot, VertRageBot,
		ThiefBotFactory, MeanThiefFactory, ExtraLife, RestoreHealth, Ammo:
		return Code(c), true
	case '.':
		return Empty, true
	}
	return 0, false
}

// Grid is a width x height matrix of placement codes. (0,0) is the
// bottom-left tile.
type Grid struct {
	Width, Height int
	cells         []Code
}

// At returns the code at (x,y), or Empty when out of range.
func (g *Grid) At(x, y int) Code {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Empty
	}
	return g.cells[y*g.Width+x]
}

// Each visits every non-empty tile, bottom row first, left to right.
func (g *Grid) Each(fn func(x, y int, c Code)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := g.cells[y*g.Width+x]; c != Empty {
				fn(x, y, c)
			}
		}
	}
}

// FileName returns the file name holding level n.
func FileName(n int) string {
	return fmt.Sprintf("level%02d.txt", n)
}

// Source loads levels from a directory of levelNN.txt files.
type Source struct {
	dir           string
	width, height int
}

func NewSource(dir string, width, height int) *Source {
	return &Source{dir: dir, width: width, height: height}
}

// Load reads and validates level n.
func (s *Source) Load(n int) (*Grid, error) {
	if n > MaxLevel {
		return nil, fmt.Errorf("level %d: %w", n, ErrNoMoreLevels)
	}
	if n < 0 {
		return nil, fmt.Errorf("level %d: %w", n, ErrNotFound)
	}
	path := filepath.Join(s.dir, FileName(n))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := Parse(f, s.width, s.height)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	return g, nil
}

// Parse reads a grid of exactly height lines of width characters. The first
// line is the top row. A leading byte order mark is ignored.
func Parse(r io.Reader, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dimensions %dx%d: %w", width, height, ErrMalformed)
	}
	g := &Grid{Width: width, Height: height, cells: make([]Code, width*height)}
	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	row := 0
	players, exits := 0, 0
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if row >= height {
			if line == "" {
				continue
			}
			return nil, fmt.Errorf("more than %d rows: %w", height, ErrMalformed)
		}
		if len(line) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", row+1, len(line), width, ErrMalformed)
		}
		y := height - 1 - row
		for x := 0; x < width; x++ {
			c, ok := parseCode(line[x])
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown code %q: %w", row+1, x+1, line[x], ErrMalformed)
			}
			switch c {
			case Player:
				players++
			case Exit:
				exits++
			}
			g.cells[y*width+x] = c
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if row != height {
		return nil, fmt.Errorf("%d rows, want %d: %w", row, height, ErrMalformed)
	}
	if players != 1 {
		return nil, fmt.Errorf("%d players, want 1: %w", players, ErrMalformed)
	}
	if exits != 1 {
		return nil, fmt.Errorf("%d exits, want 1: %w", exits, ErrMalformed)
	}
	return g, nil
}
