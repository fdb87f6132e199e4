package cli

import (
	"fmt"
	"os"

	"github.com/hooktools/hookcfg/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No hook configuration found. Run 'hookcfg init' to create one.\n")
		return err

	case errors.ErrCodeRepoNotFound:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Repository '%s' is not in the configuration\n", hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Run 'hookcfg hooks' to see configured repositories.\n")
		}
		return err

	case errors.ErrCodeRevMissing:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Repository '%s' has no pinned rev\n", hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Pin it to a tag or commit with 'hookcfg bump'.\n")
		}
		return err

	case errors.ErrCodeHookDuplicate:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook id '%s' appears more than once for '%s'\n",
				hookErr.Details["hook"], hookErr.Details["repo"])
		}
		return err

	case errors.ErrCodePatternInvalid:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Invalid regular expression in %s: %s\n",
				hookErr.Details["field"], hookErr.Details["pattern"])
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if hookErr, ok := err.(*errors.HookError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hookErr.ToJSON())
			}
		}
		return err
	}
}
