package chaos

// RandomSource yields uniformly distributed native-width words.
type RandomSource interface {
	Uint() (uint, error)
}

// RandomFunc adapts a function to RandomSource.
type RandomFunc func() (uint, error)

func (f RandomFunc) Uint() (uint, error) { return f() }

// pickVertex reduces a random word modulo 3. The word range is not a
// multiple of 3, so index 0 has one more preimage than 1 and 2. The bias
// is kept; it does not show in the output.
func pickVertex(rnd RandomSource) (int, error) {
	v, err := rnd.Uint()
	if err != nil {
		return 0, err
	}
	return int(v % 3), nil
}
