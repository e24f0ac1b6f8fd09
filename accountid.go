package accountid

import "strings"

// AccountID is a validated account identifier that exclusively owns its
// text. It is immutable once constructed and safe to hand to any number of
// concurrent readers. Plain assignment yields a complete, independent value.
//
// Always use [Parse] instead of constructing values directly, especially
// when working with input.
//
// AccountID is to [AccountIDRef] what an owned buffer is to a slice of
// someone else's: both satisfy the same structural rules and answer every
// predicate and comparison identically, but an AccountID never pins the
// buffer it was parsed from.
//
// AccountID is comparable; == agrees with [AccountID.Equal].
type AccountID struct {
	id string
}

// Parse validates id and returns an owned AccountID. This is the sole
// ingestion entry point for raw text: deserialization layers, argument
// parsing, and message decoding all funnel through here and propagate the
// [*ParseError] unchanged. The text is copied so the result does not
// retain the caller's buffer.
func Parse(id string) (AccountID, error) {
	ref, err := ParseRef(id)
	if err != nil {
		return AccountID{}, err
	}
	return ref.ToOwned(), nil
}

// MustParse is [Parse] that panics on invalid input. Intended for fixtures
// and identifiers known valid at compile time.
func MustParse(id string) AccountID {
	a, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return a
}

// Ref returns a borrowed view over the identifier's own storage, at zero
// cost. The view is valid by construction.
func (a AccountID) Ref() AccountIDRef {
	return AccountIDRef{id: a.id}
}

// Clone returns an independently owned copy of the identifier.
func (a AccountID) Clone() AccountID {
	return AccountID{id: strings.Clone(a.id)}
}

// String returns the identifier text.
func (a AccountID) String() string {
	return a.id
}

// Bytes returns a fresh copy of the identifier bytes.
func (a AccountID) Bytes() []byte {
	return []byte(a.id)
}

// Len returns the identifier length in bytes.
func (a AccountID) Len() int {
	return len(a.id)
}

// IsSystem reports whether this is the reserved system account.
func (a AccountID) IsSystem() bool {
	return a.Ref().IsSystem()
}

// IsTopLevel reports whether the identifier is a top-level account.
// See [AccountIDRef.IsTopLevel].
func (a AccountID) IsTopLevel() bool {
	return a.Ref().IsTopLevel()
}

// IsSubAccountOf reports whether the identifier is a direct sub-account of
// parent. See [AccountIDRef.IsSubAccountOf].
func (a AccountID) IsSubAccountOf(parent AccountIDRef) bool {
	return a.Ref().IsSubAccountOf(parent)
}

// IsImplicit reports whether the identifier is an implicit account.
// See [AccountIDRef.IsImplicit].
func (a AccountID) IsImplicit() bool {
	return a.Ref().IsImplicit()
}

// Equal reports whether two identifiers hold the same text.
func (a AccountID) Equal(other AccountID) bool {
	return a.id == other.id
}

// EqualString reports whether the identifier text equals s.
func (a AccountID) EqualString(s string) bool {
	return a.id == s
}

// Compare returns -1, 0, or +1 ordering two identifiers lexicographically
// by their text, consistent with [AccountIDRef.Compare] and with comparing
// the raw strings.
func (a AccountID) Compare(other AccountID) int {
	return strings.Compare(a.id, other.id)
}

// Less reports whether a orders before other.
func (a AccountID) Less(other AccountID) bool {
	return a.id < other.id
}

// MarshalText implements encoding.TextMarshaler.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the input
// like [Parse].
func (a *AccountID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
