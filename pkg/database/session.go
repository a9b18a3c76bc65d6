package database

import (
	"github.com/google/uuid"
)

// Session holds the per project state used by the object factory.
// It is reset whenever a project is created or loaded.
type Session struct {
	id       string
	counters map[string]int
}

func NewSession() *Session {
	return &Session{
		id:       uuid.New().String(),
		counters: map[string]int{},
	}
}

// Id identifies the session in log output and clipboard data.
func (s *Session) Id() string {
	return s.id
}

// NextInstance increments and returns the instance counter of a class.
func (s *Session) NextInstance(class string) int {
	s.counters[class]++
	return s.counters[class]
}

func (s *Session) InstanceCount(class string) int {
	return s.counters[class]
}

func (s *Session) ResetObjectCounters() {
	s.counters = map[string]int{}
}
