package calc

// CalculatorError is the single error kind produced by the calculator core.
// It carries a human-readable reason which the web layer surfaces verbatim.
type CalculatorError struct {
	Reason string
}

func (err *CalculatorError) Error() string {
	return err.Reason
}

// calcError is a shortcut to create a *CalculatorError.
func calcError(reason string) error {
	return &CalculatorError{Reason: reason}
}
