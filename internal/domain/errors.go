package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateFindingKey = errors.New("duplicate finding key")
	ErrInvalidInsight      = errors.New("invalid insight")
	ErrUnknownSeverity     = errors.New("unknown severity")
	ErrInvalidSnapshot     = errors.New("invalid snapshot")
	ErrNoPreviousSnapshot  = errors.New("no previous snapshot")
)

// DuplicateFindingKeyError reports two insights sharing (rule_id, table)
// within one scan.
type DuplicateFindingKeyError struct {
	Key InsightKey
	// Positions of the first and second occurrence in the input.
	First, Second int
}

func (e *DuplicateFindingKeyError) Error() string {
	return fmt.Sprintf("duplicate finding key %q (insights %d and %d)", e.Key.String(), e.First, e.Second)
}

func (e *DuplicateFindingKeyError) Unwrap() error { return ErrDuplicateFindingKey }

// InvalidInsightError reports an insight missing a required field.
type InvalidInsightError struct {
	Index int
	Field string
}

func (e *InvalidInsightError) Error() string {
	return fmt.Sprintf("insight %d: %s is required", e.Index, e.Field)
}

func (e *InvalidInsightError) Unwrap() error { return ErrInvalidInsight }

// UnknownSeverityError reports a severity outside the configured scale.
type UnknownSeverityError struct {
	Key      InsightKey
	Severity string
	Scale    SeverityScale
}

func (e *UnknownSeverityError) Error() string {
	return fmt.Sprintf("insight %q: severity %q not in %v", e.Key.String(), e.Severity, []string(e.Scale))
}

func (e *UnknownSeverityError) Unwrap() error { return ErrUnknownSeverity }
