// Package validation normalizes and checks incoming entity fields before any
// database write. Validators are pure: they take a typed input struct plus
// the current time and return either a storage-ready entity or an *Error
// naming the offending field. No I/O happens here.
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/libman/internal/entities"
)

// Error describes a field-level rule violation detected before any store
// access.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Scalar holds one raw value from a request body. Form-driven clients quote
// every value while API clients send bare numbers, so it accepts a JSON
// string, number, boolean or null and keeps the text for the validators to
// coerce.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	*s = Scalar(data)
	return nil
}

// String returns the trimmed text of the value.
func (s Scalar) String() string {
	return strings.TrimSpace(string(s))
}

func (s Scalar) empty() bool {
	return s.String() == ""
}

// intID coerces a required foreign-key field to a positive integer.
func intID(v Scalar, field string) (uint, *Error) {
	raw := v.String()
	if raw == "" {
		return 0, errf(field, "%s is required", field)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errf(field, "%s must be a valid id", field)
	}
	return uint(id), nil
}

// date parses a required YYYY-MM-DD value and returns it normalized.
func date(v Scalar, field string) (string, *Error) {
	t, err := time.Parse(entities.DateLayout, v.String())
	if err != nil {
		return "", errf(field, "%s must be a valid date (YYYY-MM-DD)", field)
	}
	return t.Format(entities.DateLayout), nil
}

// dateOrToday parses an optional date field, defaulting to the current day.
func dateOrToday(v Scalar, field string, now time.Time) (string, *Error) {
	if v.empty() {
		return now.Format(entities.DateLayout), nil
	}
	return date(v, field)
}
