// Package growth implements the append policy shared by the token and AST
// arrays: capacity starts at 16 and doubles whenever an append would push the
// array past 75% full.
package growth

// InitialCapacity is the capacity of a freshly allocated array.
const InitialCapacity = 16

// Append appends v to s, growing the backing array first if the append would
// exceed three quarters of the current capacity.
//
// Growth moves the elements, so callers must index into the result rather
// than keep element pointers across calls.
func Append[T any](s []T, v T) []T {
	if needsGrow(len(s), cap(s)) {
		s = resize(s)
	}
	return append(s, v)
}

// Make returns an empty array with the initial capacity.
func Make[T any]() []T {
	return make([]T, 0, InitialCapacity)
}

func needsGrow(n, c int) bool {
	return (n+1)*4 > c*3
}

func resize[T any](s []T) []T {
	c := cap(s) * 2
	if c < InitialCapacity {
		c = InitialCapacity
	}
	for needsGrow(len(s), c) {
		c *= 2
	}
	out := make([]T, len(s), c)
	copy(out, s)
	return out
}
