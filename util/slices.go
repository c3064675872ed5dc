package util

// Contains reports whether elem occurs in slice.
func Contains[T comparable](slice []T, elem T) bool {
	for _, x := range slice {
		if x == elem {
			return true
		}
	}

	return false
}

// Map returns a new slice holding f applied to each element of slice.
func Map[T, R any](slice []T, f func(T) R) []R {
	out := make([]R, 0, len(slice))
	for _, elem := range slice {
		out = append(out, f(elem))
	}

	return out
}
