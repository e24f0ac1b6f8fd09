//go:build !accountid_debug

package accountid

func debugValidate(string) {}
