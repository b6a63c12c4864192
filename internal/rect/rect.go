// Package rect draws rectangle outlines with box-drawing characters.
package rect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinSide is the smallest width or height that still has two corners.
	MinSide = 2
	// MaxSide bounds each side so the grid size cannot overflow.
	MaxSide = 4096
)

// ErrInvalidDimension is matched by every DimensionError.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError reports a width or height outside [MinSide, MaxSide].
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %dx%d: width and height must be between %d and %d", e.Width, e.Height, MinSide, MaxSide)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

var borders = map[string]func() lipgloss.Border{
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
	"ascii":   lipgloss.ASCIIBorder,
}

// BorderByName resolves a named border style. The empty name is "normal".
func BorderByName(name string) (lipgloss.Border, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "normal"
	}
	fn, ok := borders[key]
	if !ok {
		return lipgloss.Border{}, fmt.Errorf("unknown border style: %s (known: %s)", name, strings.Join(BorderNames(), ", "))
	}
	return fn(), nil
}

// BorderNames returns the known border styles, sorted.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the outline of a width x height rectangle, one
// newline-terminated line per row:
//
//	┌────┐
//	│    │
//	└────┘
func Render(width, height int) (string, error) {
	return RenderBorder(width, height, lipgloss.NormalBorder())
}

// RenderBorder is Render with the corner and edge glyphs taken from b.
func RenderBorder(width, height int, b lipgloss.Border) (string, error) {
	if width < MinSide || height < MinSide || width > MaxSide || height > MaxSide {
		return "", &DimensionError{Width: width, Height: height}
	}
	g := glyphsOf(b)
	grid := make([][]rune, height)
	last := height - 1
	for y := range grid {
		row := make([]rune, width+1)
		switch y {
		case 0:
			fillRow(row, g.topLeft, g.top, g.topRight)
		case last:
			fillRow(row, g.bottomLeft, g.bottom, g.bottomRight)
		default:
			fillRow(row, g.left, ' ', g.right)
		}
		grid[y] = row
	}

	var sb strings.Builder
	sb.Grow(height * (width + 1) * utf8.UTFMax)
	for _, row := range grid {
		sb.WriteString(string(row))
	}
	return sb.String(), nil
}

// fillRow writes left, the fill rune, right and a trailing newline.
func fillRow(row []rune, left, fill, right rune) {
	end := len(row) - 2
	row[0] = left
	for x := 1; x < end; x++ {
		row[x] = fill
	}
	row[end] = right
	row[end+1] = '\n'
}

type glyphs struct {
	top, bottom, left, right                   rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

func glyphsOf(b lipgloss.Border) glyphs {
	return glyphs{
		top:         firstRune(b.Top),
		bottom:      firstRune(b.Bottom),
		left:        firstRune(b.Left),
		right:       firstRune(b.Right),
		topLeft:     firstRune(b.TopLeft),
		topRight:    firstRune(b.TopRight),
		bottomLeft:  firstRune(b.BottomLeft),
		bottomRight: firstRune(b.BottomRight),
	}
}

func firstRune(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
