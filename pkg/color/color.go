package color

import (
	"fmt"
	"os"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		colorEnabled = false
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return colorize(Red, text)
}

func BrightRedText(text string) string {
	return colorize(BrightRed, text)
}

func GreenText(text string) string {
	return colorize(Green, text)
}

func YellowText(text string) string {
	return colorize(Yellow, text)
}

func BlueText(text string) string {
	return colorize(Blue, text)
}

func CyanText(text string) string {
	return colorize(Cyan, text)
}

func GrayText(text string) string {
	return colorize(Gray, text)
}

func BoldText(text string) string {
	return colorize(Bold, text)
}

// Line renders a source line number
func Line(line int) string {
	return CyanText(fmt.Sprintf("%4d", line))
}

// Function renders a function header as "<line>: sub <name>"
func Function(line int, name string) string {
	return fmt.Sprintf("%s: %s %s", Line(line), YellowText("sub"), BoldText(name))
}
