package ui

import (
	"strings"

	"github.com/Makepad-fr/menu/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Price string
	Starter, Main, Dessert                      string
	Bullet                                      string
	CornerTL, CornerTR, CornerBL, CornerBR      string
	H, V                                        string
	BarFull, BarEmpty                           string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Price: "\033[93m",
			Starter: "\033[92m", Main: "\033[91m", Dessert: "\033[95m",
			Bullet:   "◆",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Bullet:   "-",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Price: fgYellow,
			Starter: fgGreen, Main: fgRed, Dessert: fgMagenta,
			Bullet:   "•",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// CourseColor picks the section colour for a course.
func (t Theme) CourseColor(c model.Course) string {
	switch c {
	case model.Starter:
		return t.Starter
	case model.Main:
		return t.Main
	case model.Dessert:
		return t.Dessert
	}
	return t.Accent
}
