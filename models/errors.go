package models

// InputError reports a malformed engine or API input. Field identifies which
// input was rejected so the caller can surface it as a 4xx.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
