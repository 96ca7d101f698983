package garden

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/space-garden/internal/core"
)

// Glyph is how one tile is drawn. Every tile is two terminal columns wide:
// either one double-width rune or two single-width ones.
type Glyph struct {
	Rune  rune
	Fill  rune // Second column when Rune is single-width
	Color core.Color
}

// G builds a glyph; fill defaults to a copy of r.
func G(r rune, c core.Color) Glyph {
	return Glyph{Rune: r, Fill: r, Color: c}
}

// Wide reports whether the glyph occupies both columns on its own.
func (g Glyph) Wide() bool {
	return runewidth.RuneWidth(g.Rune) == 2
}

// Glyphs is a complete tile set.
type Glyphs struct {
	Floor, Wall, Railing, Ladder, Bed Glyph
	Window, WindowShut               Glyph
	Door, DoorOpen, Vacuum           Glyph
	Button, ButtonLit                Glyph
	Shield, ShieldAlarm              Glyph
	Gardener, GardenerDead           Glyph
	Crew, CrewScared, CrewFrazzled   Glyph
	CrewDead                         Glyph
	Cat, Can, Portal                 Glyph
	Seedling, Plant, Fruiting        Glyph
	Withered                         Glyph
	BlackHole, Planet, Moon, Star    Glyph
	Debug                            Glyph
}

// EmojiGlyphs is the default tile set for terminals with emoji support.
func EmojiGlyphs() *Glyphs {
	return &Glyphs{
		Floor:        G(' ', core.ColorDefault),
		Wall:         G('█', core.ColorGray),
		Railing:      G('═', core.ColorDarkGray),
		Ladder:       G('╪', core.ColorYellow),
		Bed:          G('░', core.ColorOrange),
		Window:       G(' ', core.ColorBlue),
		WindowShut:   G('▓', core.ColorCyan),
		Door:         G('▐', core.ColorBrightRed),
		DoorOpen:     G(' ', core.ColorDefault),
		Vacuum:       G('·', core.ColorDarkGray),
		Button:       G('🔲', core.ColorRed),
		ButtonLit:    G('🔴', core.ColorBrightRed),
		Shield:       G('🔘', core.ColorCyan),
		ShieldAlarm:  G('🚨', core.ColorBrightRed),
		Gardener:     G('🧑', core.ColorBrightGreen),
		GardenerDead: G('💀', core.ColorWhite),
		Crew:         G('🙂', core.ColorWhite),
		CrewScared:   G('😨', core.ColorBrightYellow),
		CrewFrazzled: G('😵', core.ColorMagenta),
		CrewDead:     G('💀', core.ColorGray),
		Cat:          G('🐈', core.ColorYellow),
		Can:          G('🪣', core.ColorCyan),
		Portal:       G('🌀', core.ColorMagenta),
		Seedling:     G('🌱', core.ColorGreen),
		Plant:        G('🌿', core.ColorGreen),
		Fruiting:     G('🍅', core.ColorRed),
		Withered:     G('🥀', core.ColorOrange),
		BlackHole:    G('⚫', core.ColorMagenta),
		Planet:       G('🪐', core.ColorOrange),
		Moon:         G('🌑', core.ColorGray),
		Star:         G('⭐', core.ColorBrightYellow),
		Debug:        G('+', core.ColorBrightRed),
	}
}

// ASCIIGlyphs is the fallback tile set.
func ASCIIGlyphs() *Glyphs {
	return &Glyphs{
		Floor:        G(' ', core.ColorDefault),
		Wall:         G('#', core.ColorGray),
		Railing:      G('=', core.ColorDarkGray),
		Ladder:       G('H', core.ColorYellow),
		Bed:          G('.', core.ColorOrange),
		Window:       G(' ', core.ColorBlue),
		WindowShut:   G('%', core.ColorCyan),
		Door:         G('|', core.ColorBrightRed),
		DoorOpen:     G(' ', core.ColorDefault),
		Vacuum:       G(':', core.ColorDarkGray),
		Button:       Glyph{Rune: '[', Fill: ']', Color: core.ColorRed},
		ButtonLit:    Glyph{Rune: '[', Fill: '*', Color: core.ColorBrightRed},
		Shield:       Glyph{Rune: '(', Fill: ')', Color: core.ColorCyan},
		ShieldAlarm:  Glyph{Rune: '(', Fill: '!', Color: core.ColorBrightRed},
		Gardener:     Glyph{Rune: '@', Fill: ' ', Color: core.ColorBrightGreen},
		GardenerDead: Glyph{Rune: 'X', Fill: ' ', Color: core.ColorWhite},
		Crew:         Glyph{Rune: 'n', Fill: ' ', Color: core.ColorWhite},
		CrewScared:   Glyph{Rune: 's', Fill: ' ', Color: core.ColorBrightYellow},
		CrewFrazzled: Glyph{Rune: 'z', Fill: ' ', Color: core.ColorMagenta},
		CrewDead:     Glyph{Rune: 'x', Fill: ' ', Color: core.ColorGray},
		Cat:          Glyph{Rune: 'c', Fill: ' ', Color: core.ColorYellow},
		Can:          Glyph{Rune: 'u', Fill: ' ', Color: core.ColorCyan},
		Portal:       Glyph{Rune: '(', Fill: ')', Color: core.ColorMagenta},
		Seedling:     Glyph{Rune: ',', Fill: ' ', Color: core.ColorGreen},
		Plant:        Glyph{Rune: 'Y', Fill: ' ', Color: core.ColorGreen},
		Fruiting:     Glyph{Rune: 'Y', Fill: 'o', Color: core.ColorRed},
		Withered:     Glyph{Rune: 'v', Fill: ' ', Color: core.ColorOrange},
		BlackHole:    Glyph{Rune: '(', Fill: ')', Color: core.ColorMagenta},
		Planet:       Glyph{Rune: 'O', Fill: ' ', Color: core.ColorOrange},
		Moon:         Glyph{Rune: 'o', Fill: ' ', Color: core.ColorGray},
		Star:         Glyph{Rune: '*', Fill: ' ', Color: core.ColorBrightYellow},
		Debug:        G('+', core.ColorBrightRed),
	}
}
