package validate

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
)

// Severity ranks how serious a finding is. The zero value is unset and is
// rejected when a finding is created.
type Severity int

const (
	// SeverityInfo marks an observation that needs no action.
	SeverityInfo Severity = iota + 1
	// SeverityWarning marks data that encodes but is likely wrong.
	SeverityWarning
	// SeverityError marks data that breaks the format or cannot be encoded.
	SeverityError
)

// IsValid reports whether s is one of the defined severities.
func (s Severity) IsValid() bool {
	return s >= SeverityInfo && s <= SeverityError
}

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity maps "info", "warning" or "error" (any case) to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, &errors.ValidationError{Field: "severity", Value: s,
		Message: fmt.Sprintf("must be info, warning or error; got %q", s)}
}
