package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// Layout is the ship map decoded from ASCII rows. Positions are tile
// corners in pixels.
type Layout struct {
	Cols, Rows   int
	Tile         float64
	Walls        []WallSpec
	Beds         []core.Rect
	Seedlings    []core.Coord
	Door         core.Rect
	Vacuum       core.Rect
	AirlockPanel core.Rect
	ShieldPanel  core.Rect
	Windows      [3]core.Rect
	Can          core.Coord
	HasCan       bool
	Gardener     core.Coord
	NPCs         []core.Coord
	Portal       core.Coord
}

// WallSpec is a horizontal run of static collider tiles.
type WallSpec struct {
	Rect core.Rect
	Type collision.Type
}

// tileBox accumulates the bounding box of tiles with the same glyph.
type tileBox struct {
	set        bool
	minX, minY int
	maxX, maxY int
}

func (b *tileBox) add(x, y int) {
	if !b.set {
		*b = tileBox{set: true, minX: x, minY: y, maxX: x, maxY: y}
		return
	}
	b.minX, b.maxX = min(b.minX, x), max(b.maxX, x)
	b.minY, b.maxY = min(b.minY, y), max(b.maxY, y)
}

func (b tileBox) rect(tile float64) core.Rect {
	if !b.set {
		return core.Rect{}
	}
	return core.MustRect(
		core.C(float64(b.minX)*tile, float64(b.minY)*tile),
		core.C(float64(b.maxX+1)*tile, float64(b.maxY+1)*tile),
	)
}

// wallType maps a glyph to its static collider type.
func wallType(r rune) (collision.Type, bool) {
	switch r {
	case '#', '1', '2', '3':
		return collision.TypeWall, true
	case '=':
		return collision.TypeGardenerWall, true
	case 'H':
		return collision.TypeLadder, true
	default:
		return collision.TypeNone, false
	}
}

// ParseLayout decodes the ship map. Legend:
//
//	#  hull wall            =  railing (blocks the gardener only)
//	H  ladder (blocks crew) 1-3 shield door windows (part of the hull)
//	G  garden bed           p  garden bed with a seedling
//	A  airlock door         K  airlock vacuum chamber
//	B  airlock button       S  shield button
//	W  watering can         @  gardener
//	n  crew member          P  cat portal
//	.  floor
func ParseLayout(rows []string, tile float64) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, errors.New("layout: no rows")
	}
	l := Layout{Rows: len(rows), Tile: tile}
	var (
		door, vacuum, airlockPanel, shieldPanel tileBox
		windows                                 [3]tileBox
		gardeners                               int
	)
	at := func(x, y int) core.Coord {
		return core.C(float64(x)*tile, float64(y)*tile)
	}

	for y, row := range rows {
		runes := []rune(row)
		if y == 0 {
			l.Cols = len(runes)
		} else if len(runes) != l.Cols {
			return Layout{}, fmt.Errorf("layout: row %d has width %d, expected %d", y, len(runes), l.Cols)
		}

		runStart, runType := -1, collision.TypeNone
		flush := func(end int) {
			if runStart >= 0 {
				l.Walls = append(l.Walls, WallSpec{
					Rect: core.MustRect(at(runStart, y), at(end, y+1)),
					Type: runType,
				})
				runStart = -1
			}
		}

		for x, r := range runes {
			if t, ok := wallType(r); ok {
				if runStart >= 0 && t != runType {
					flush(x)
				}
				if runStart < 0 {
					runStart, runType = x, t
				}
			} else {
				flush(x)
			}

			switch r {
			case '#', '=', 'H', '.':
			case '1', '2', '3':
				windows[r-'1'].add(x, y)
			case 'G':
				l.Beds = append(l.Beds, core.RectAt(at(x, y), tile, tile))
			case 'p':
				l.Beds = append(l.Beds, core.RectAt(at(x, y), tile, tile))
				l.Seedlings = append(l.Seedlings, at(x, y))
			case 'A':
				door.add(x, y)
			case 'K':
				vacuum.add(x, y)
			case 'B':
				airlockPanel.add(x, y)
			case 'S':
				shieldPanel.add(x, y)
			case 'W':
				l.Can, l.HasCan = at(x, y), true
			case '@':
				l.Gardener = at(x, y)
				gardeners++
			case 'n':
				l.NPCs = append(l.NPCs, at(x, y))
			case 'P':
				l.Portal = at(x, y)
			default:
				return Layout{}, fmt.Errorf("layout: unknown glyph %q at %d,%d", r, x, y)
			}
		}
		flush(len(runes))
	}

	if gardeners != 1 {
		return Layout{}, fmt.Errorf("layout: expected one gardener, found %d", gardeners)
	}
	var missing []error
	for _, req := range []struct {
		box  tileBox
		name string
	}{{door, "airlock door (A)"}, {vacuum, "airlock vacuum (K)"}, {airlockPanel, "airlock button (B)"}} {
		if !req.box.set {
			missing = append(missing, fmt.Errorf("layout: missing %s", req.name))
		}
	}
	if len(missing) > 0 {
		return Layout{}, errors.Join(missing...)
	}

	l.Door = door.rect(tile)
	l.Vacuum = vacuum.rect(tile)
	l.AirlockPanel = airlockPanel.rect(tile)
	l.ShieldPanel = shieldPanel.rect(tile)
	for i := range windows {
		l.Windows[i] = windows[i].rect(tile)
	}
	return l, nil
}

// PixelSize returns the ship's extent in pixels.
func (l Layout) PixelSize() (w, h float64) {
	return float64(l.Cols) * l.Tile, float64(l.Rows) * l.Tile
}

// standing converts a tile corner to the drawing position of a sprite of
// height h whose feet occupy that tile.
func standing(tile core.Coord, tileSize, h float64) core.Coord {
	return core.C(tile.X, tile.Y+tileSize-h)
}
