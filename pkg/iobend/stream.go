// Package iobend provides scoped decorators for formatted output streams:
// one that restores formatting flags when it goes out of scope, one that
// writes fixed text when closed, and a tracer that logs its own lifecycle.
package iobend

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Flags control how a Stream formats numbers.
type Flags uint16

const (
	// ShowPos prefixes non-negative numbers with '+'.
	ShowPos Flags = 1 << iota
	// Fixed formats numbers without an exponent, with Precision decimals.
	Fixed
	// Scientific always uses an exponent, with Precision decimals.
	Scientific
	// UpperCase prints exponents and special values in upper case.
	UpperCase
)

// FloatField masks the flags that select the float notation.
const FloatField = Fixed | Scientific

// DefaultPrecision matches the usual stream default of six significant digits.
const DefaultPrecision = 6

// Stream is a writer with number formatting state. The first write error is
// kept and reported by Err; later writes are skipped.
type Stream struct {
	w         io.Writer
	flags     Flags
	precision int
	err       error
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w, precision: DefaultPrecision}
}

func (s *Stream) Flags() Flags {
	return s.flags
}

// SetFlags replaces all flags and returns the previous ones.
func (s *Stream) SetFlags(f Flags) Flags {
	old := s.flags
	s.flags = f
	return old
}

// Setf turns the given flags on and returns the previous flags.
func (s *Stream) Setf(f Flags) Flags {
	return s.SetFlags(s.flags | f)
}

// Unsetf turns the given flags off and returns the previous flags.
func (s *Stream) Unsetf(f Flags) Flags {
	return s.SetFlags(s.flags &^ f)
}

// SetFloatField switches the float notation to f, which is Fixed, Scientific,
// both or neither, leaving the other flags alone. Fixed and Scientific
// together select the general notation.
func (s *Stream) SetFloatField(f Flags) Flags {
	return s.SetFlags(s.flags&^FloatField | f&FloatField)
}

func (s *Stream) Precision() int {
	return s.precision
}

// SetPrecision sets the precision and returns the previous one.
func (s *Stream) SetPrecision(p int) int {
	old := s.precision
	s.precision = p
	return old
}

func (s *Stream) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Text writes text unchanged.
func (s *Stream) Text(text string) *Stream {
	_, _ = io.WriteString(s, text)
	return s
}

// Float writes v formatted according to the current flags and precision.
func (s *Stream) Float(v float64) *Stream {
	return s.Text(s.FormatFloat(v))
}

// FormatFloat formats v the way Float would write it.
func (s *Stream) FormatFloat(v float64) string {
	verb := byte('g')
	switch {
	case s.flags&Fixed != 0 && s.flags&Scientific == 0:
		verb = 'f'
	case s.flags&Scientific != 0 && s.flags&Fixed == 0:
		verb = 'e'
	}
	if s.flags&UpperCase != 0 {
		verb -= 'a' - 'A'
	}

	prec := s.precision
	if (verb == 'g' || verb == 'G') && prec == 0 {
		prec = 1
	}

	out := strconv.FormatFloat(v, verb, prec, 64)
	if s.flags&ShowPos != 0 && !math.Signbit(v) && !math.IsNaN(v) && !strings.HasPrefix(out, "+") {
		out = "+" + out
	}
	if s.flags&UpperCase != 0 {
		out = strings.ToUpper(out)
	}
	return out
}

// Print writes every argument, formatting floats with Float and everything
// else with fmt.
func (s *Stream) Print(args ...any) *Stream {
	for _, a := range args {
		switch v := a.(type) {
		case float64:
			s.Float(v)
		case float32:
			s.Float(float64(v))
		case string:
			s.Text(v)
		default:
			_, _ = fmt.Fprint(s, v)
		}
	}
	return s
}

// Err returns the first write error.
func (s *Stream) Err() error {
	return s.err
}
