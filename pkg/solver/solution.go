package solver

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/matzehuels/spanlayout/pkg/algebra"
)

// Anonymous is the inconsistency key for a contradiction that cannot be
// attributed to a named variable, such as the constraint 1 = 0.
const Anonymous = ""

// Set is a set of variable names. It marshals to a sorted JSON array.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in s.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in s in lexical order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s Set) MarshalJSON() ([]byte, error) {
	names := s.Sorted()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSet(names...)
	return nil
}

// Status is the classification of a single variable.
type Status int

const (
	// Unknown means the variable did not occur in the solved system.
	Unknown Status = iota
	Solved
	Underdetermined
	Inconsistent
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Underdetermined:
		return "underdetermined"
	case Inconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Solution is the outcome of solving a constraint system. A name appears in
// at most one of Assignments, Underdetermined and Inconsistencies.
type Solution struct {
	Assignments     map[string]float64 `json:"assignments"`
	Underdetermined Set                `json:"underdetermined"`
	Inconsistencies Set                `json:"inconsistencies"`
}

func inconsistent(names ...string) Solution {
	return Solution{Inconsistencies: NewSet(names...)}
}

// IsSolved reports whether every variable was assigned a value.
func (s Solution) IsSolved() bool {
	return len(s.Underdetermined) == 0 && len(s.Inconsistencies) == 0
}

// IsInconsistent reports whether any contradiction was found.
func (s Solution) IsInconsistent() bool {
	return len(s.Inconsistencies) > 0
}

// Value returns the value assigned to name.
func (s Solution) Value(name string) (float64, bool) {
	v, ok := s.Assignments[name]
	return v, ok
}

// Status classifies name.
func (s Solution) Status(name string) Status {
	switch {
	case s.Inconsistencies.Has(name):
		return Inconsistent
	case s.Underdetermined.Has(name):
		return Underdetermined
	}
	if _, ok := s.Assignments[name]; ok {
		return Solved
	}
	return Unknown
}

// Merge combines two partial solutions into a new one. Conflicting
// assignments become inconsistencies, an inconsistent name loses its
// assignment, and an assigned or inconsistent name is no longer
// underdetermined. The anonymous key is dropped once a named inconsistency
// is known.
func (s Solution) Merge(other Solution) Solution {
	out := Solution{
		Assignments:     make(map[string]float64, len(s.Assignments)+len(other.Assignments)),
		Underdetermined: make(Set, len(s.Underdetermined)+len(other.Underdetermined)),
		Inconsistencies: make(Set, len(s.Inconsistencies)+len(other.Inconsistencies)),
	}
	maps.Copy(out.Underdetermined, s.Underdetermined)
	maps.Copy(out.Underdetermined, other.Underdetermined)
	maps.Copy(out.Inconsistencies, s.Inconsistencies)
	maps.Copy(out.Inconsistencies, other.Inconsistencies)
	maps.Copy(out.Assignments, s.Assignments)

	for name, v := range other.Assignments {
		prev, ok := out.Assignments[name]
		switch {
		case !ok:
			out.Assignments[name] = v
		case !algebra.Approx(prev, v):
			out.Inconsistencies[name] = struct{}{}
		}
	}

	for name := range out.Inconsistencies {
		delete(out.Assignments, name)
		delete(out.Underdetermined, name)
	}
	for name := range out.Assignments {
		delete(out.Underdetermined, name)
	}
	if out.Inconsistencies.Has(Anonymous) && len(out.Inconsistencies) > 1 {
		delete(out.Inconsistencies, Anonymous)
	}
	return out
}

// MarshalJSON writes nil collections as empty ones.
func (s Solution) MarshalJSON() ([]byte, error) {
	type plain Solution
	if s.Assignments == nil {
		s.Assignments = map[string]float64{}
	}
	return json.Marshal(plain(s))
}
