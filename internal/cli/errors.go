package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopdocs/launcher/ident"
	"github.com/shopdocs/launcher/internal/launch"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "open drawings")
	Cause       string   // The underlying cause (e.g., "invalid identifier")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("failed to %s", e.Operation))
	} else {
		msg.WriteString("operation failed")
	}

	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// NewValidationError creates an error for validation failures
func NewValidationError(operation, field, value string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("invalid %s: %q", field, value),
		Suggestions: suggestions,
	}
}

// NewConfigError creates an error for configuration issues
func NewConfigError(operation string, underlying error, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       "configuration error",
		Details:     underlying.Error(),
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// expandError explains why a command line could not be expanded.
func expandError(operation string, v ident.Variant, err error) error {
	var (
		parseErr *ident.ParseError
		rangeErr *ident.InvalidRangeError
	)

	switch {
	case errors.As(err, &parseErr):
		example := CommonSuggestions.NumericForm
		if v == ident.Drawing {
			example = CommonSuggestions.DrawingForm
		}
		return &CLIError{
			Operation:   operation,
			Cause:       fmt.Sprintf("invalid identifier %q", parseErr.Token),
			Details:     parseErr.Error(),
			Suggestions: []string{example, CommonSuggestions.OneRange},
			Underlying:  err,
		}
	case errors.As(err, &rangeErr):
		return &CLIError{
			Operation:   operation,
			Cause:       fmt.Sprintf("range %q ends at %d before it starts at %d", rangeErr.Token, rangeErr.End, rangeErr.Start),
			Suggestions: []string{CommonSuggestions.ShortEnd, CommonSuggestions.Carry},
			Underlying:  err,
		}
	case errors.Is(err, launch.ErrRangeTooLarge):
		return &CLIError{
			Operation:   operation,
			Cause:       err.Error(),
			Suggestions: []string{CommonSuggestions.SplitRange, CommonSuggestions.MaxRange},
			Underlying:  err,
		}
	default:
		return WrapError(operation, err)
	}
}

// WrapError wraps an existing error with CLI-friendly context
func WrapError(operation string, err error, suggestions ...string) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Operation == "" {
			cliErr.Operation = operation
		}
		return cliErr
	}

	return &CLIError{
		Operation:   operation,
		Cause:       err.Error(),
		Suggestions: suggestions,
		Underlying:  err,
	}
}

// Common error messages and suggestions
var (
	CommonSuggestions = struct {
		NumericForm string
		DrawingForm string
		OneRange    string
		ShortEnd    string
		Carry       string
		SplitRange  string
		MaxRange    string
		CheckConfig string
		RunHelp     string
	}{
		NumericForm: "Use digits only, e.g. 12345 or 12345-60",
		DrawingForm: "Use letters followed by digits, e.g. A1 or A1-A9",
		OneRange:    "A token holds at most one '-', split longer lists into separate arguments",
		ShortEnd:    "A shortened range end borrows leading digits from its start: 120-45 means 120 to 145",
		Carry:       "Short numbers borrow leading digits from the previous argument; write the full number to start over",
		SplitRange:  "Split the range into several smaller ranges",
		MaxRange:    "Raise max_range in the config file if this is intended",
		CheckConfig: "Check your configuration file or SHOPDOCS_* environment variables",
		RunHelp:     "Run command with --help for usage information",
	}
)
