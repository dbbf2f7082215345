// Package lineset holds ascending, duplicate-free sets of 1-based line numbers.
package lineset

import "sort"

// Set is an ascending sequence of unique line numbers. Line number 0 is
// never a member.
type Set []int

// Universe returns {1, ..., n}.
func Universe(n int) Set {
	if n <= 0 {
		return Set{}
	}
	s := make(Set, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// Of builds a set from arbitrary line numbers, sorting and dropping
// duplicates and non-positive entries.
func Of(nums ...int) Set {
	s := make(Set, 0, len(nums))
	for _, n := range nums {
		if n > 0 {
			s = append(s, n)
		}
	}
	sort.Ints(s)
	out := s[:0]
	for i, n := range s {
		if i > 0 && n == s[i-1] {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s Set) Len() int {
	return len(s)
}

// Last returns the highest member, or 0 when s is empty.
func (s Set) Last() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Search returns the position of the first member >= n (len(s) if none).
func (s Set) Search(n int) int {
	return sort.SearchInts(s, n)
}

func (s Set) Contains(n int) bool {
	i := s.Search(n)
	return i < len(s) && s[i] == n
}

// Intersect returns the members present in both s and other. An empty
// operand yields an empty result.
func (s Set) Intersect(other Set) Set {
	if len(s) == 0 || len(other) == 0 {
		return Set{}
	}
	out := make(Set, 0, min(len(s), len(other)))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
