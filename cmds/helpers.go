package cmds

// Var defines name as a flag taking one value. The "name." form resets
// it to the zero value.
func Var[T any](name string) *T {
	value := new(T)

	Define(name, Func(func(v T) {
		*value = v
	}))

	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))

	return value
}

// Switch defines name as a boolean flag. The "!name" form turns it off.
func Switch(name string) *bool {
	value := new(bool)

	Define(name, Func(func() {
		*value = true
	}))

	Define("!"+name, Func(func() {
		*value = false
	}))

	return value
}

// Collect defines name as a repeatable flag accumulating values.
func Collect[T any](name string) *[]T {
	value := new([]T)

	Define(name, Func(func(v T) {
		*value = append(*value, v)
	}))

	return value
}
