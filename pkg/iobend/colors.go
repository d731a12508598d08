package iobend

import "errors"

// ErrUnbound is returned by decorators closed before being bound to a stream.
var ErrUnbound = errors.New("iobend: decorator is not bound to a stream")

// ANSI terminal escape sequences.
const (
	NoColor = "\033[0m"
	Color7  = "\033[37m" // white
	Color6  = "\033[36m" // cyan
	Color5  = "\033[35m" // magenta
	Color4  = "\033[34m" // blue
	Color3  = "\033[33m" // yellow
	Color2  = "\033[32m" // green
	Color1  = "\033[31m" // red
	Color0  = "\033[30m" // black

	ColErr   = "\033[31m"
	ErrColor = "\033[38;2;255;100;100m" // light red
	ColFil   = "\033[38;2;90;90;128m"   // dark blueish
	ColLig   = "\033[38;2;200;200;255m" // light blueish
	ColBri   = "\033[38;2;255;200;255m" // very white
	ColRet   = "\033[38;2;255;128;128m" // orange
)

// Colored wraps text in color and a reset, or returns it unchanged when
// enabled is false.
func Colored(enabled bool, color, text string) string {
	if !enabled {
		return text
	}
	return color + text + NoColor
}
