package policy

// Contains reports whether the category set contains id.
func Contains(set []int, id int) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// Intersect returns the elements of a that are also in b, preserving a's
// order. Duplicates in a are collapsed.
func Intersect(a, b []int) []int {
	out := make([]int, 0, len(a))
	for _, v := range a {
		if Contains(b, v) && !Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// EqualUnordered reports whether two category sets contain the same elements,
// regardless of order. Category sets carry no duplicates, so a length check
// plus membership test is sufficient.
func EqualUnordered(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !Contains(b, v) {
			return false
		}
	}
	return true
}

// add returns a copy of set with id appended if not already present.
func add(set []int, id int) []int {
	if Contains(set, id) {
		return clone(set)
	}
	out := make([]int, 0, len(set)+1)
	out = append(out, set...)
	return append(out, id)
}

// remove returns a copy of set with the first occurrence of id removed.
func remove(set []int, id int) []int {
	out := make([]int, 0, len(set))
	removed := false
	for _, v := range set {
		if v == id && !removed {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}

func clone(set []int) []int {
	out := make([]int, len(set))
	copy(out, set)
	return out
}
