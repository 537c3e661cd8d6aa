package core

// IDGenerator produces unique, lexicographically sortable ledger references
type IDGenerator interface {
	NewID() string
}
