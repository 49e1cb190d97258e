package configs

import (
	"errors"
)

// First decodes the value at path from the first file that defines it.
// A missing value is the zero value, other errors panic.
func First[T any](loader Loader, path string) (value T) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			var zero T
			return zero
		}
		panic(err)
	}
	return value
}
