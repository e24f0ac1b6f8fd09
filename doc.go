// Package accountid provides types for validating, representing, and
// comparing the account identifiers used to address accounts on the ledger.
//
// These are simple value types for checking identifier text (length bounds,
// character set, separator placement) and deriving classifications from it,
// not routines for resolving or storing accounts.
package accountid
