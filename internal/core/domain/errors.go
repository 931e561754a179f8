package domain

import (
	"errors"
	"fmt"
)

// ErrCityNotFound is returned when a city identifier does not resolve to a
// loaded CityConfig.
var ErrCityNotFound = errors.New("city not found")

// Input error codes. They are stable and returned to callers verbatim so the
// wizard can map them to form messages.
const (
	CodeMissingGeography    = "missing_geography"
	CodeMissingBudgetTier   = "missing_budget_tier"
	CodeUnknownBudgetTier   = "unknown_budget_tier"
	CodeUnknownUnit         = "unknown_unit"
	CodeUnknownLanguage     = "unknown_language"
	CodeUnknownDepartment   = "unknown_department"
	CodeInvalidDemographics = "invalid_demographics"
	CodeInvalidBudget       = "invalid_budget"
	CodeInvalidPublisher    = "invalid_publisher"
	CodeInvalidRequest      = "invalid_request"
)

// InputError rejects a single request. It is recoverable: the caller fixes
// the request and tries again.
type InputError struct {
	Code   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input (%s): %s", e.Code, e.Reason)
}

// NewInputError builds an InputError with a formatted reason.
func NewInputError(code, format string, args ...any) *InputError {
	return &InputError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports a malformed or inconsistent city configuration. It is
// surfaced at load time and is not recoverable per request.
type ConfigError struct {
	City   string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.City == "" {
		return fmt.Sprintf("invalid city config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid city config %q: %s: %s", e.City, e.Field, e.Reason)
}
