package models

import "github.com/rs/xid"

// Person is a named participant. The same person may coach several teams
// and play on others.
type Person struct {
	ID   xid.ID
	Name string
}

func NewPerson(name string) *Person {
	return &Person{Name: name}
}

// Equals compares by identifier once both persons have been persisted,
// and falls back to the name otherwise.
func (p *Person) Equals(other *Person) bool {
	if other == nil {
		return false
	}
	if p.ID != (xid.ID{}) && other.ID != (xid.ID{}) {
		return p.ID == other.ID
	}
	return p.Name == other.Name
}
