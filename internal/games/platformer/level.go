package platformer

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/toybox/internal/entity"
)

// Level tiles. Anything else is empty space.
const (
	tileGround   = '#'
	tilePlatform = '='
	tileBlock    = '?'
	tileFlag     = 'F'
	markStart    = '@'
	markEnemy    = 'e'
)

// builtinLevel is used when no level asset is configured.
var builtinLevel = []string{
	"",
	"",
	"",
	"",
	"",
	"",
	"                                                  ??????                                                        F",
	"                    ?????                                                                                       F",
	"                                                                                                                F",
	"                                           e                                                                    F",
	"            =======                     ========                                =======                  #      F",
	"                                                            ##                                          ##      F",
	"                                                            ##                                 ##      ###      F",
	"   @                     e                   e              ##    e                       e    ##     ####      F",
	"##############################   #####################################    ##############################################",
	"##############################   #####################################    ##############################################",
}

var errNoStart = errors.New("level has no start marker")

// level is a parsed tile map. Markers are lifted out of the tiles.
type level struct {
	tiles   [][]rune
	w, h    int
	start   entity.Vec
	enemies []entity.Vec
}

// parseLevel reads a board. Rows may be ragged; short rows are padded
// with empty space. Exactly one start marker is required.
func parseLevel(rows []string) (*level, error) {
	l := &level{h: len(rows)}
	for _, row := range rows {
		l.w = max(l.w, len([]rune(row)))
	}

	starts := 0
	for y, row := range rows {
		line := make([]rune, l.w)
		for x := range line {
			line[x] = ' '
		}
		for x, r := range []rune(row) {
			switch r {
			case markStart:
				l.start = entity.V(float64(x), float64(y))
				starts++
			case markEnemy:
				l.enemies = append(l.enemies, entity.V(float64(x), float64(y)))
			default:
				line[x] = r
			}
		}
		l.tiles = append(l.tiles, line)
	}

	switch {
	case starts == 0:
		return nil, errNoStart
	case starts > 1:
		return nil, fmt.Errorf("level has %d start markers", starts)
	}
	return l, nil
}

// at returns the tile at a cell. The side walls are solid; above and
// below the map is empty.
func (l *level) at(x, y int) rune {
	if x < 0 || x >= l.w {
		return tileGround
	}
	if y < 0 || y >= l.h {
		return ' '
	}
	return l.tiles[y][x]
}

func solid(r rune) bool {
	return r == tileGround || r == tilePlatform || r == tileBlock
}

// cells returns the inclusive cell range a box covers. A box ending
// exactly on a cell boundary does not cover the next cell.
func cells(b entity.Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X))
	y0 = int(math.Floor(b.Y))
	x1 = int(math.Ceil(b.Right())) - 1
	y1 = int(math.Ceil(b.Bottom())) - 1
	return x0, y0, x1, y1
}

// blocked reports whether b covers any solid tile.
func (l *level) blocked(b entity.Box) bool {
	return l.any(b, solid)
}

// touches reports whether b covers a tile equal to t.
func (l *level) touches(b entity.Box, t rune) bool {
	return l.any(b, func(r rune) bool { return r == t })
}

func (l *level) any(b entity.Box, match func(rune) bool) bool {
	x0, y0, x1, y1 := cells(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if match(l.at(x, y)) {
				return true
			}
		}
	}
	return false
}
