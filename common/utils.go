package common

// Coalesce returns the first non-zero value in the list, or the type's zero
// value when every entry is zero. Builders use it to resolve an explicit
// setting against its default, treating the zero value as "unset".
//
// Parameters:
//   - values: candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
