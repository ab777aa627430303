package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// ValidationError reports a single bad field. Handlers collect these
// into the per-field error map of the API response.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Errors maps field name to the first failure reason for that field.
type Errors map[string]string

func (e Errors) Add(field, reason string) {
	if _, ok := e[field]; !ok {
		e[field] = reason
	}
}

func (e Errors) AddErr(err error) {
	if ve, ok := err.(*ValidationError); ok {
		e.Add(ve.Field, ve.Reason)
		return
	}
	e.Add("_", err.Error())
}

func (e Errors) Empty() bool { return len(e) == 0 }

var (
	phoneRx      = regexp.MustCompile(`^\+?\d{7,11}$`)
	passportRx   = regexp.MustCompile(`^\d{10}$`)
	emailRx      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	roomNumberRx = regexp.MustCompile(`^\d{3}[A-Z]?$`)
)

// ValidateName checks a letters-only name part. Unicode letters are
// accepted, so Cyrillic names pass. Required controls whether an empty
// value is an error (patronymic is optional).
func ValidateName(value, field string, required bool) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return "", &ValidationError{Field: field, Reason: "must not be empty"}
		}
		return "", nil
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && r != '-' {
			return "", &ValidationError{Field: field, Reason: "must contain letters only"}
		}
	}
	return value, nil
}

// ValidatePhone accepts 7-11 digits with an optional leading plus.
func ValidatePhone(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if !phoneRx.MatchString(value) {
		return "", &ValidationError{Field: field, Reason: "must be 7-11 digits with optional leading '+'"}
	}
	return value, nil
}

// ValidatePassport accepts an empty value or exactly 10 digits.
func ValidatePassport(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !passportRx.MatchString(value) {
		return "", &ValidationError{Field: field, Reason: "must be exactly 10 digits"}
	}
	return value, nil
}

// ValidateEmail accepts an empty value or a well-formed address.
func ValidateEmail(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !emailRx.MatchString(value) {
		return "", &ValidationError{Field: field, Reason: "must be a valid email address"}
	}
	return value, nil
}

// ValidateRoomNumber checks the "3 digits + optional uppercase letter"
// pattern, e.g. "101" or "101A".
func ValidateRoomNumber(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if !roomNumberRx.MatchString(value) {
		return "", &ValidationError{Field: field, Reason: "must be 3 digits optionally followed by one uppercase letter"}
	}
	return value, nil
}

var dateLayouts = []string{"2006-01-02", "02.01.2006", "02/01/2006", "2006.01.02"}

// ParseDate decodes an external date string. Several layouts are
// accepted; the result is normalized to midnight UTC.
func ParseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &ValidationError{Field: field, Reason: "must not be empty"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, &ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD, DD.MM.YYYY or DD/MM/YYYY format"}
}
