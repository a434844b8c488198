package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls count dice with the given sides using the mode
	Roll(count, sides int, mode Mode) (*RollResult, error)
}

// Source yields a value in [0, n)
type Source interface {
	Intn(n int) int
}
