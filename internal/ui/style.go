// Package ui holds terminal styling and layout helpers.
package ui

import (
	"fmt"
	"strconv"

	internalstrings "github.com/amonks/skid/internal/strings"
	"github.com/amonks/skid/internal/validation"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes returns the accepted color modes.
func ColorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

// SetColorMode forces or disables colour. Auto keeps terminal detection.
func SetColorMode(mode string) error {
	switch internalstrings.NormalizeLowerTrimSpace(mode) {
	case "", ColorAuto:
		return nil
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
		return nil
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return nil
	default:
		return fmt.Errorf("unknown color mode %q. %s", mode, validation.ValidValuesHint(ColorModes()))
	}
}

// Label styles a property or section name.
func Label(value string) string {
	return labelStyle.Render(value)
}

// Text styles a string value.
func Text(value string) string {
	return textStyle.Render(value)
}

// Number styles a numeric value.
func Number(value string) string {
	return numberStyle.Render(value)
}

// Muted styles punctuation.
func Muted(value string) string {
	return mutedStyle.Render(value)
}

// DueDate styles a date.
func DueDate(value string) string {
	return dateStyle.Render(value)
}

// Tag renders a class id as "(id)".
func Tag(id string) string {
	return tagStyle.Render("(" + id + ")")
}

// Prompt styles the input prompt.
func Prompt(value string) string {
	return promptStyle.Render(value)
}

// ErrorMark styles the error prefix.
func ErrorMark(value string) string {
	return errorStyle.Render(value)
}

// Property renders "name: value" with a string value.
func Property(name, value string) string {
	return Label(name) + ": " + Text(value)
}

// NumberProperty renders "name: value" with a numeric value.
func NumberProperty(name string, value int) string {
	return Label(name) + ": " + Number(strconv.Itoa(value))
}

// Position renders a 1-based list marker "n)".
func Position(n int) string {
	return Number(strconv.Itoa(n)) + Muted(")")
}

// Bullet renders the completed-list marker.
func Bullet() string {
	return Muted("-")
}
