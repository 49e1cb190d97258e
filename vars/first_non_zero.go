package vars

// FirstNonZero returns the first argument that is not the zero value.
// Flags come first so they override config values.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
