package model

import "fmt"

// ParseError represents a failure to read or decode a source document.
// Extraction misses are not parse errors; this type is reserved for
// inputs that cannot be turned into text or records at all.
type ParseError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(source, message string, cause error) *ParseError {
	return &ParseError{
		Source:  source,
		Message: message,
		Cause:   cause,
	}
}

// BatchError represents malformed batch input: a record that cannot be
// decoded into the Invoice shape. This is the only error class that
// surfaces as a hard failure, since it indicates a contract violation
// by an upstream collaborator rather than a property of a noisy
// document.
type BatchError struct {
	Index   int
	Message string
	Cause   error
}

func (e *BatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("batch record %d: %s (%v)", e.Index, e.Message, e.Cause)
	}
	return fmt.Sprintf("batch record %d: %s", e.Index, e.Message)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}

// NewBatchError creates a new batch error
func NewBatchError(index int, message string, cause error) *BatchError {
	return &BatchError{
		Index:   index,
		Message: message,
		Cause:   cause,
	}
}
