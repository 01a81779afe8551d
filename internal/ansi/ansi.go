// Package ansi provides the ANSI escape sequences and color handling shared
// by all animation renderers. It centralizes cursor control, line/region
// clearing, and true-color detection with a 256-color fallback.
package ansi

import (
	"fmt"
	"os"
	"strings"
)

// ANSI escape codes for terminal control.
const (
	Escape         = "\033["            // CSI (Control Sequence Introducer)
	HideCursor     = Escape + "?25l"    // hide cursor
	ShowCursor     = Escape + "?25h"    // show cursor
	ResetColor     = Escape + "0m"      // reset all attributes
	ClearLine      = Escape + "K"       // clear from cursor to end of line
	ClearBelow     = Escape + "J"       // clear from cursor to end of screen
	TrueColorFg    = Escape + "38;2;"   // 24-bit foreground color prefix (append r;g;bm)
	Color256Fg     = Escape + "38;5;"   // 256-color foreground prefix (append Nm)
	CarriageReturn = "\r"               // return cursor to start of line
)

// CursorUp returns the escape sequence moving the cursor up n lines.
// For n <= 0 it returns the empty string.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%s%dA", Escape, n)
}

// SupportsTrueColor checks if the terminal supports 24-bit true color
// by examining the COLORTERM environment variable.
// Note: macOS Terminal.app does not support true color; iTerm2 and most
// modern terminals do.
func SupportsTrueColor() bool {
	colorterm := os.Getenv("COLORTERM")
	return strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")
}

// RGBTo256 converts RGB values (0-255) to an ANSI 256-color palette index.
// Uses the 6x6x6 color cube (indices 16-231) with rounded scaling.
func RGBTo256(r, g, b int) int {
	// Scale 0-255 to 0-5 with rounding: (v*5+127)/255
	r6 := (r*5 + 127) / 255
	g6 := (g*5 + 127) / 255
	b6 := (b*5 + 127) / 255
	return 16 + 36*r6 + 6*g6 + b6 // 6x6x6 cube starts at index 16
}

// GrayTo256 converts a gray level (0-255) to an index on the 256-color
// grayscale ramp (indices 232-255, 24 steps).
func GrayTo256(level int) int {
	step := (level * 23 + 127) / 255
	return 232 + step
}

// ColorCode returns the foreground escape sequence for the given RGB color,
// using 24-bit true color when available and the 6x6x6 cube otherwise.
func ColorCode(r, g, b int, trueColor bool) string {
	if trueColor {
		return fmt.Sprintf("%s%d;%d;%dm", TrueColorFg, r, g, b)
	}
	return fmt.Sprintf("%s%dm", Color256Fg, RGBTo256(r, g, b))
}

// GrayCode returns the foreground escape sequence for a gray level (0-255),
// using 24-bit true color when available and the grayscale ramp otherwise.
func GrayCode(level int, trueColor bool) string {
	if trueColor {
		return fmt.Sprintf("%s%d;%d;%dm", TrueColorFg, level, level, level)
	}
	return fmt.Sprintf("%s%dm", Color256Fg, GrayTo256(level))
}
