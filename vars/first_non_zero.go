package vars

// FirstNonZero returns the first value that is not the zero value.
func FirstNonZero[T comparable](values ...T) T {
	for _, value := range values {
		var zero T
		if value != zero {
			return value
		}
	}
	var zero T
	return zero
}
