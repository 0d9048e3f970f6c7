// Copyright © 2025 The Peano authors

package peano

import (
	"bytes"
	"fmt"
)

// ErrorVal implements the error interface so that error values can cross the
// boundary to Go callers.  The condition name is stored in the Str field
// while message data is stored in the Cells slice.
type ErrorVal PVal

// Error implements the error interface.  When the error carries a source
// location the location prefixes the message.
func (e *ErrorVal) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("%s: %s", e.Source, e.baseMessage())
	}
	return e.baseMessage()
}

func (e *ErrorVal) baseMessage() string {
	msg := e.ErrorMessage()
	if e.Str != "" && e.Str != "error" {
		return fmt.Sprintf("%s: %s", e.Str, msg)
	}
	return msg
}

// Condition returns the error condition name (e.g. "undefined-symbol").
func (e *ErrorVal) Condition() string {
	return e.Str
}

// ErrorMessage returns the rendered message carried by the error.
func (e *ErrorVal) ErrorMessage() string {
	var buf bytes.Buffer
	for i, cell := range e.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(cell.String())
	}
	return buf.String()
}

// GoError returns a Go error wrapping v when v is an error value and nil
// otherwise.
func GoError(v *PVal) error {
	if v.Type != PError {
		return nil
	}
	return (*ErrorVal)(v)
}

// Errorf returns an error value with condition "error" and a formatted
// message.
func Errorf(format string, v ...interface{}) *PVal {
	return ErrorConditionf("error", format, v...)
}

// ErrorConditionf returns an error value with the given condition name and a
// message rendered using fmt.Sprintf.
func ErrorConditionf(condition string, format string, v ...interface{}) *PVal {
	return &PVal{
		Type:  PError,
		Str:   condition,
		Cells: []*PVal{{Type: PSymbol, Str: fmt.Sprintf(format, v...)}},
	}
}
