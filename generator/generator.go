package generator

import (
	"errors"
	"fmt"
)

func NewErrorf(format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...))
}

// Generator generates a sequence of string values, e.g. to feed a
// text-synthesis loop.
type Generator interface {
	// NextString generates the next value in the sequence.
	NextString() string
	// LastString returns the value generated by the last call to
	// NextString, without advancing the sequence.
	LastString() string
}
