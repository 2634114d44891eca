package main

import (
	"github.com/zyedidia/generic/mapset"
)

//
// A NounSet holds lower-cased nouns, remembering the order in which
// they were added so listings come out the same way every time.
//
type NounSet struct {
	members mapset.Set[string]
	order   []string
	// Nouns that were removed. They can never be added again.
	gone mapset.Set[string]
}

func NewNounSet(nouns ...string) *NounSet {
	s := &NounSet{members: mapset.New[string](), gone: mapset.New[string]()}
	for _, n := range nouns {
		s.Add(n)
	}
	return s
}

// Add returns false if the noun is already present or was removed
// before.
func (s *NounSet) Add(noun string) bool {
	noun = normalize(noun)
	if s.members.Has(noun) || s.gone.Has(noun) {
		return false
	}

	s.members.Put(noun)
	s.order = append(s.order, noun)
	return true
}

func (s *NounSet) Contains(noun string) bool {
	return s.members.Has(normalize(noun))
}

// Remove returns false if the noun was not present.
func (s *NounSet) Remove(noun string) bool {
	noun = normalize(noun)
	if !s.members.Has(noun) {
		return false
	}

	s.members.Remove(noun)
	s.gone.Put(noun)
	for i, n := range s.order {
		if n == noun {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *NounSet) Len() int {
	return s.members.Size()
}

// Nouns returns a copy of the members in insertion order.
func (s *NounSet) Nouns() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
