package document

import "fmt"

// MissingInputError is returned when a required input is absent before any
// scoring starts.
type MissingInputError struct {
	// Input names what is missing, for example "job description".
	Input string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s is required", e.Input)
}

// Missing returns a MissingInputError for the named input.
func Missing(input string) error {
	return &MissingInputError{Input: input}
}
