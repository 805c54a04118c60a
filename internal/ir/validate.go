package ir

import (
	"fmt"
	"strings"
)

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Code    string   // e.g., "MISSING_ID", "NIL_HANDLER"
	Message string   // Human-readable description
	Path    []string // e.g., ["handlers", "2"]
}

// String returns a human-readable representation of the issue
func (v ValidationIssue) String() string {
	if len(v.Path) > 0 {
		return fmt.Sprintf("[%s] %s (at %s)", v.Code, v.Message, strings.Join(v.Path, "."))
	}
	return fmt.Sprintf("[%s] %s", v.Code, v.Message)
}

// ValidationError contains all validation issues found during validation
type ValidationError struct {
	Issues []ValidationIssue
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("validation failed with %d issues:\n", len(e.Issues)))
	for i, issue := range e.Issues {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, issue.String()))
	}
	return b.String()
}

// AddIssue adds a validation issue to the error
func (e *ValidationError) AddIssue(code, message string, path ...string) {
	e.Issues = append(e.Issues, ValidationIssue{
		Code:    code,
		Message: message,
		Path:    path,
	})
}

// HasIssues returns true if there are any validation issues
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// HasCode reports whether any issue carries the given code
func (e *ValidationError) HasCode(code string) bool {
	for _, issue := range e.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// Validation error codes
const (
	ErrCodeMissingID          = "MISSING_ID"
	ErrCodeEmptyActionType    = "EMPTY_ACTION_TYPE"
	ErrCodeReservedActionType = "RESERVED_ACTION_TYPE"
	ErrCodeNilHandler         = "NIL_HANDLER"
	ErrCodeDuplicateHandler   = "DUPLICATE_HANDLER"
)

// Validate checks the reducer configuration for errors
func Validate[S any](r *ReducerConfig[S]) *ValidationError {
	errs := &ValidationError{}

	if r.ID == "" {
		errs.AddIssue(ErrCodeMissingID, "reducer id is required")
	}

	seen := make(map[ActionType]int, len(r.Handlers))
	for i, h := range r.Handlers {
		path := []string{"handlers", fmt.Sprintf("%d", i)}

		switch h.Type {
		case "":
			errs.AddIssue(ErrCodeEmptyActionType, "action type must not be empty", path...)
		case InitActionType:
			errs.AddIssue(ErrCodeReservedActionType,
				fmt.Sprintf("action type '%s' is reserved for store initialization", h.Type),
				path...)
		}

		if h.Handle == nil {
			errs.AddIssue(ErrCodeNilHandler,
				fmt.Sprintf("handler for '%s' is nil", h.Type),
				path...)
		}

		if h.Type != "" {
			if first, ok := seen[h.Type]; ok {
				errs.AddIssue(ErrCodeDuplicateHandler,
					fmt.Sprintf("action type '%s' already handled at index %d", h.Type, first),
					path...)
			} else {
				seen[h.Type] = i
			}
		}
	}

	if errs.HasIssues() {
		return errs
	}
	return nil
}
