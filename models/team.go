package models

import "github.com/rs/xid"

// Team holds its roster: coaches are shared Person references, players are
// owned records binding a person to this team under a jersey number.
type Team struct {
	ID   xid.ID
	Name string

	coaches []*Person
	players []*Player
}

// Player is a roster entry. Players are created through Team.AddPlayer and
// never outlive their team.
type Player struct {
	Person *Person
	Team   *Team
	Number int
}

func NewTeam(name string) *Team {
	return &Team{Name: name}
}

// Equals compares by identifier once both teams have been persisted, and
// falls back to the name otherwise. Two unsaved teams with the same name
// are the same team.
func (t *Team) Equals(other *Team) bool {
	if other == nil {
		return false
	}
	if t.ID != (xid.ID{}) && other.ID != (xid.ID{}) {
		return t.ID == other.ID
	}
	return t.Name == other.Name
}

// AddCoach appends unconditionally. Duplicate prevention is the calling
// service's job; it checks HasCoach first.
func (t *Team) AddCoach(person *Person) {
	t.coaches = append(t.coaches, person)
}

func (t *Team) HasCoach(person *Person) bool {
	for _, c := range t.coaches {
		if c.Equals(person) {
			return true
		}
	}
	return false
}

func (t *Team) Coaches() []*Person {
	out := make([]*Person, len(t.coaches))
	copy(out, t.coaches)
	return out
}

// AddPlayer binds person to this team under number. Like AddCoach it does
// not check for duplicates; callers check HasPlayer and
// HasPlayerWithNumber first.
func (t *Team) AddPlayer(person *Person, number int) *Player {
	player := &Player{Person: person, Team: t, Number: number}
	t.players = append(t.players, player)
	return player
}

// HasPlayer reports whether any roster entry is for the given person.
func (t *Team) HasPlayer(person *Person) bool {
	for _, p := range t.players {
		if p.Person.Equals(person) {
			return true
		}
	}
	return false
}

func (t *Team) HasPlayerWithNumber(number int) bool {
	for _, p := range t.players {
		if p.Number == number {
			return true
		}
	}
	return false
}

func (t *Team) Players() []*Player {
	out := make([]*Player, len(t.players))
	copy(out, t.players)
	return out
}
