package accountid

import "fmt"

// ErrorKind classifies a validation failure. Every error returned by
// [Validate] carries exactly one kind from this closed set.
type ErrorKind int

const (
	// TooShort: the candidate is shorter than [MinLen] bytes.
	TooShort ErrorKind = iota + 1
	// TooLong: the candidate is longer than [MaxLen] bytes.
	TooLong
	// InvalidChar: a character outside a-z, 0-9, '-', '_', '.'.
	InvalidChar
	// RedundantSeparator: a separator in leading, trailing, or
	// consecutive-separator position.
	RedundantSeparator
)

func (k ErrorKind) String() string {
	switch k {
	case TooShort:
		return "too short"
	case TooLong:
		return "too long"
	case InvalidChar:
		return "invalid character"
	case RedundantSeparator:
		return "redundant separator"
	}
	return "unknown"
}

// ParseError reports the first structural violation found in a candidate
// account ID. For InvalidChar and RedundantSeparator, Index is the byte
// offset of the offending character and Char is the character itself. The
// length kinds carry no position: Index is -1 and Char is zero.
type ParseError struct {
	Kind  ErrorKind
	Index int
	Char  rune
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case TooShort:
		return fmt.Sprintf("account ID is too short (%d chars min)", MinLen)
	case TooLong:
		return fmt.Sprintf("account ID is too long (%d chars max)", MaxLen)
	case InvalidChar:
		return fmt.Sprintf("account ID contains invalid character %q at index %d", e.Char, e.Index)
	case RedundantSeparator:
		return fmt.Sprintf("account ID contains redundant separator %q at index %d", e.Char, e.Index)
	}
	return "account ID failed validation"
}
