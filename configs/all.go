package configs

import "iter"

// All yields every definition of path across the config files.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var decoded T
			if err := value.Decode(&decoded); err != nil {
				panic(err)
			}
			if !yield(decoded) {
				return
			}
		}
	}
}
