package accountid

const (
	// MinLen is the shortest valid length for an account ID, in bytes.
	MinLen = 2
	// MaxLen is the longest valid length for an account ID, in bytes.
	MaxLen = 64
)

// SystemAccountID is the reserved identifier of the system account. It is
// structurally valid but never classified as top-level.
const SystemAccountID = "system"

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.'
}

func isAllowed(r rune) bool {
	return ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || isSeparator(r)
}

// Validate checks id against the account ID structural rules: length in
// [MinLen, MaxLen], characters restricted to a-z, 0-9 and the separators
// '-', '_', '.', and no separator in leading, trailing, or
// consecutive-separator position.
//
// The check is a single left-to-right pass that stops at the first
// violation. Length bounds are checked before the character scan and are
// reported without a position. Within the scan, character-class membership
// is checked before separator placement, so an invalid character next to a
// separator is reported as InvalidChar, not RedundantSeparator. On failure
// the returned error is always a [*ParseError].
func Validate(id string) error {
	if len(id) < MinLen {
		return &ParseError{Kind: TooShort, Index: -1}
	}
	if len(id) > MaxLen {
		return &ParseError{Kind: TooLong, Index: -1}
	}
	prevSeparator := false
	for i, r := range id {
		if !isAllowed(r) {
			return &ParseError{Kind: InvalidChar, Index: i, Char: r}
		}
		if isSeparator(r) {
			// Separators are single-byte, so the byte offset of a
			// trailing separator is exactly len(id)-1.
			if i == 0 || i == len(id)-1 || prevSeparator {
				return &ParseError{Kind: RedundantSeparator, Index: i, Char: r}
			}
			prevSeparator = true
		} else {
			prevSeparator = false
		}
	}
	return nil
}
