package store

import "github.com/jeanpaul/rolodex/internal/client"

// Directory is the contract the console front ends use to reach the record store.
type Directory interface {
	// Register validates the fields and creates a record from the trimmed values.
	Register(f client.Fields) (*client.Client, error)

	// FindByID returns the record with the given identity, or false if none exists.
	FindByID(id int) (*client.Client, bool)

	// RemoveByID forgets a record. It reports whether anything was removed.
	RemoveByID(id int) bool

	// List returns every record in creation order.
	List() []*client.Client

	// Match returns the records whose name, company or email match a glob pattern.
	Match(pattern string) ([]*client.Client, error)

	// Len reports how many records the directory holds.
	Len() int
}
