// Package errors defines the calculator error taxonomy.
package errors

import (
	"fmt"
)

var (
	// ErrNotFound a material table resource is absent or unreadable.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrMalformedRecord a table line is missing the expected label separator.
	ErrMalformedRecord = fmt.Errorf("malformedrecord")
	// ErrMissingField a required record is absent from an opened table.
	ErrMissingField = fmt.Errorf("missingfield")
	// ErrInvalidNumber text failed to parse as a floating point value.
	ErrInvalidNumber = fmt.Errorf("invalidnumber")
	// ErrScriptFormat a macro line is missing the expected separator.
	ErrScriptFormat = fmt.Errorf("scriptformat")
	// ErrUnknownCommand an unrecognized macro command under strict mode.
	ErrUnknownCommand = fmt.Errorf("unknowncommand")
	// ErrMalformed error malformed request.
	ErrMalformed = fmt.Errorf("malformed")
)
