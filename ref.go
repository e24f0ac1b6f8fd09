package accountid

import "strings"

// AccountIDRef is a borrowed view over a validated account ID. It aliases
// the string it was constructed from without copying, so its usefulness is
// bounded by the lifetime of that source; when the identifier must outlive
// its source buffer, convert it with [AccountIDRef.ToOwned].
//
// The only ways to obtain a non-zero AccountIDRef are [ParseRef],
// [RefUnchecked], and [AccountID.Ref], so every value (except the zero
// value, which callers should not construct) is known to satisfy the
// structural rules enforced by [Validate]. Predicates and comparisons rely
// on that guarantee.
//
// AccountIDRef is comparable; == agrees with [AccountIDRef.Equal].
type AccountIDRef struct {
	id string
}

// ParseRef validates id and returns a zero-copy view over it. The returned
// ref aliases id directly.
func ParseRef(id string) (AccountIDRef, error) {
	if err := Validate(id); err != nil {
		return AccountIDRef{}, err
	}
	return AccountIDRef{id: id}, nil
}

// RefUnchecked wraps id without validating it, for callers that already
// know the identifier is valid and cannot afford the scan. The caller is
// fully responsible for validity: predicates and comparisons on an invalid
// ref are undefined. Builds with the accountid_debug tag assert validity
// and panic on misuse; normal builds perform no check.
func RefUnchecked(id string) AccountIDRef {
	debugValidate(id)
	return AccountIDRef{id: id}
}

// String returns the identifier text.
func (r AccountIDRef) String() string {
	return r.id
}

// Bytes returns a fresh copy of the identifier bytes. The copy keeps the
// underlying text immutable no matter what the caller does with the slice.
func (r AccountIDRef) Bytes() []byte {
	return []byte(r.id)
}

// Len returns the identifier length in bytes.
func (r AccountIDRef) Len() int {
	return len(r.id)
}

// IsSystem reports whether this is the reserved system account.
func (r AccountIDRef) IsSystem() bool {
	return r.id == SystemAccountID
}

// IsTopLevel reports whether the identifier is a top-level account: one
// with no '.' separator. The reserved system account is excluded even
// though it contains no dot.
func (r AccountIDRef) IsTopLevel() bool {
	return !r.IsSystem() && !strings.Contains(r.id, ".")
}

// IsSubAccountOf reports whether the identifier is a direct sub-account of
// parent: it ends with "." + parent and the prefix before that suffix
// contains no further '.'. Ancestry is not transitive here:
//
//	app.alice.unc is a sub-account of alice.unc
//	app.alice.unc is NOT a sub-account of unc
func (r AccountIDRef) IsSubAccountOf(parent AccountIDRef) bool {
	prefix, ok := strings.CutSuffix(r.id, parent.id)
	if !ok {
		return false
	}
	prefix, ok = strings.CutSuffix(prefix, ".")
	if !ok {
		return false
	}
	return !strings.Contains(prefix, ".")
}

// IsImplicit reports whether the identifier is an implicit account:
// exactly 64 characters, all lowercase hexadecimal digits. Uppercase hex
// never appears here since validation rejects it outright.
func (r AccountIDRef) IsImplicit() bool {
	if len(r.id) != 64 {
		return false
	}
	for i := 0; i < len(r.id); i++ {
		c := r.id[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// Equal reports whether two refs hold the same identifier text.
func (r AccountIDRef) Equal(other AccountIDRef) bool {
	return r.id == other.id
}

// EqualString reports whether the identifier text equals s.
func (r AccountIDRef) EqualString(s string) bool {
	return r.id == s
}

// Compare returns -1, 0, or +1 ordering two refs lexicographically by
// their text, byte-wise. The order is identical to comparing the raw
// strings with [strings.Compare].
func (r AccountIDRef) Compare(other AccountIDRef) int {
	return strings.Compare(r.id, other.id)
}

// Less reports whether r orders before other.
func (r AccountIDRef) Less(other AccountIDRef) bool {
	return r.id < other.id
}

// ToOwned copies the identifier text into an independently owned
// [AccountID]. It always succeeds: the ref is already validated. The copy
// releases any larger buffer the ref's text may be aliasing into.
func (r AccountIDRef) ToOwned() AccountID {
	return AccountID{id: strings.Clone(r.id)}
}

// MarshalText implements encoding.TextMarshaler. There is no unmarshaling
// counterpart on the ref: decoding needs owned storage, use [AccountID].
func (r AccountIDRef) MarshalText() ([]byte, error) {
	return []byte(r.id), nil
}
