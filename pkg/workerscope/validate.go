package workerscope

// Validate checks the capability presented for t before anything is run in
// it. It returns a *TamperError when the constructor is not the expected
// built-in.
func Validate(t ContextType, c Capability) error {
	want := t.Constructor()
	if want == "" {
		return ErrUnknownType
	}
	if c.Constructor != want {
		return &TamperError{Type: t, Expected: want, Got: c.Constructor}
	}
	return nil
}
