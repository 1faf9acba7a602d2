package people

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/war-crycz/ai-kurz/birthdate"
)

// User is a saved person, records are never modified once saved
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	DaysAlive int    `json:"days_alive"`
}

// NewUser normalizes the birth date and counts the days alive at today.
// A date that cannot be parsed counts zero days.
func NewUser(name string, birthDate string, today time.Time) User {
	normalized := birthdate.Normalize(birthDate)
	var days int
	if d, err := birthdate.Parse(normalized); err == nil {
		days = birthdate.DaysBetween(d, birthdate.FromTime(today))
	}
	return User{
		ID:        uuid.NewString(),
		Name:      name,
		BirthDate: normalized,
		DaysAlive: days,
	}
}

// Store keeps users in memory for the lifetime of the process, in insertion order
type Store struct {
	mtx   sync.RWMutex
	users []User
}

func NewStore() *Store {
	return new(Store)
}

// Save appends a user
func (s *Store) Save(u User) {
	s.mtx.Lock()
	s.users = append(s.users, u)
	s.mtx.Unlock()
}

// List returns a copy of the saved users
func (s *Store) List() []User {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	ret := make([]User, len(s.users))
	copy(ret, s.users)
	return ret
}

// Len returns the number of saved users
func (s *Store) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.users)
}

// TotalDays sums the days alive of all users
func (s *Store) TotalDays() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	var total int
	for _, u := range s.users {
		total += u.DaysAlive
	}
	return total
}

// Clear removes all users and returns how many were removed
func (s *Store) Clear() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	n := len(s.users)
	s.users = nil
	return n
}
