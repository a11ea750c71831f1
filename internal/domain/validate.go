package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every violation found in a payload, not just the
// first one.
type ValidationError struct {
	Entity string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// ValidateInsert checks raw input against the full insert contract: required
// fields must be present, every supplied field must match its declared kind,
// and declared defaults fill absent fields. Unknown keys are dropped. The
// returned map holds normalized values (dates as YYYY-MM-DD, timestamps as
// RFC3339, integers as int).
func (s Schema) ValidateInsert(input map[string]any) (map[string]any, error) {
	return s.validate(input, false)
}

// ValidatePartial checks raw input against the partial-update contract: the
// same shape with every field optional. Fields absent from the input stay
// absent from the result so a merge never clears them.
func (s Schema) ValidatePartial(input map[string]any) (map[string]any, error) {
	return s.validate(input, true)
}

func (s Schema) validate(input map[string]any, partial bool) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	var issues []ValidationIssue

	for _, field := range s.Fields {
		value, present := input[field.Name]

		if !present {
			if partial {
				continue
			}
			if field.Default != nil {
				out[field.Name] = field.Default
				continue
			}
			if field.Required {
				issues = append(issues, ValidationIssue{Field: field.Name, Reason: "is required"})
			}
			continue
		}

		if value == nil {
			if field.Required {
				issues = append(issues, ValidationIssue{Field: field.Name, Reason: "must not be null"})
				continue
			}
			out[field.Name] = nil
			continue
		}

		normalized, reason := coerce(field, value)
		if reason != "" {
			issues = append(issues, ValidationIssue{Field: field.Name, Reason: reason})
			continue
		}
		out[field.Name] = normalized
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Entity: s.Entity, Issues: issues}
	}
	return out, nil
}

func coerce(field Field, value any) (any, string) {
	switch field.Kind {
	case Text:
		text, ok := value.(string)
		if !ok {
			return nil, "must be a string"
		}
		return text, ""

	case Int:
		num, ok := value.(float64)
		if !ok || num != math.Trunc(num) {
			return nil, "must be an integer"
		}
		return int(num), ""

	case Number:
		switch v := value.(type) {
		case float64:
			return v, ""
		case string:
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, "must be a number"
			}
			return parsed, ""
		default:
			return nil, "must be a number"
		}

	case Bool:
		flag, ok := value.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return flag, ""

	case Date:
		raw, ok := value.(string)
		if !ok {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		parsed, err := ParseDate(raw)
		if err != nil {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		return parsed.Format("2006-01-02"), ""

	case Timestamp:
		raw, ok := value.(string)
		if !ok {
			return nil, "must be an RFC3339 timestamp"
		}
		parsed, err := ParseDate(raw)
		if err != nil {
			return nil, "must be an RFC3339 timestamp"
		}
		return parsed.Format(time.RFC3339), ""

	case Enum:
		text, ok := value.(string)
		if !ok {
			return nil, "must be a string"
		}
		for _, allowed := range field.Enum {
			if text == allowed {
				return text, ""
			}
		}
		return nil, "must be one of " + strings.Join(field.Enum, ", ")
	}
	return nil, "has an unknown kind"
}

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
