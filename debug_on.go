//go:build accountid_debug

package accountid

import "fmt"

// debugValidate backs RefUnchecked in accountid_debug builds, so tests can
// catch misuse of the unchecked constructor before it corrupts downstream
// predicate results. Normal builds compile the no-op version.
func debugValidate(id string) {
	if err := Validate(id); err != nil {
		panic(fmt.Sprintf("accountid: RefUnchecked(%q): %v", id, err))
	}
}
