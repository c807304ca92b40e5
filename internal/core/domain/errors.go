package domain

// ArgumentError marks a call with an invalid argument, a precondition the
// caller should have met.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{Message: message}
}

// BusinessRuleError marks a violation of a domain rule on otherwise
// well-formed input.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func NewBusinessRuleError(message string) *BusinessRuleError {
	return &BusinessRuleError{Message: message}
}
