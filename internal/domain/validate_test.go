package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Иванов", true},
		{"Smith", true},
		{"Петрова-Сидорова", true},
		{"Ivanov123", false},
		{"John Smith", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := ValidateName(tc.value, "surname", true)
		if tc.ok {
			assert.NoError(t, err, tc.value)
		} else {
			assert.Error(t, err, tc.value)
		}
	}

	// Optional field accepts empty.
	v, err := ValidateName("", "patronymic", false)
	assert.NoError(t, err)
	assert.Empty(t, v)

	// Surrounding whitespace is trimmed, not rejected.
	v, err = ValidateName("  Иванов  ", "surname", true)
	require.NoError(t, err)
	assert.Equal(t, "Иванов", v)
}

func TestValidatePhone(t *testing.T) {
	for _, good := range []string{"+77771234567", "77771234567", "1234567"} {
		_, err := ValidatePhone(good, "phone")
		assert.NoError(t, err, good)
	}
	for _, bad := range []string{"", "123456", "+7 777 123 45 67", "123456789012", "phone"} {
		_, err := ValidatePhone(bad, "phone")
		assert.Error(t, err, bad)
	}
}

func TestValidatePassport(t *testing.T) {
	_, err := ValidatePassport("1234567890", "passport")
	assert.NoError(t, err)

	// Optional.
	_, err = ValidatePassport("", "passport")
	assert.NoError(t, err)

	for _, bad := range []string{"123456789", "12345678901", "12345678AB"} {
		_, err := ValidatePassport(bad, "passport")
		assert.Error(t, err, bad)
	}
}

func TestValidateEmail(t *testing.T) {
	_, err := ValidateEmail("guest@example.com", "email")
	assert.NoError(t, err)

	_, err = ValidateEmail("", "email")
	assert.NoError(t, err)

	for _, bad := range []string{"guest", "guest@", "@example.com", "guest@example"} {
		_, err := ValidateEmail(bad, "email")
		assert.Error(t, err, bad)
	}
}

func TestValidateRoomNumber(t *testing.T) {
	for _, good := range []string{"101", "101A", "999Z"} {
		_, err := ValidateRoomNumber(good, "room_number")
		assert.NoError(t, err, good)
	}
	for _, bad := range []string{"", "10A", "1011", "101a", "101AB", "abc"} {
		_, err := ValidateRoomNumber(bad, "room_number")
		assert.Error(t, err, bad)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2026-10-05", "05.10.2026", "05/10/2026", "2026.10.05"} {
		got, err := ParseDate(raw, "check_in")
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(want), raw)
	}

	for _, bad := range []string{"", "not-a-date", "2026-13-05", "32.10.2026"} {
		_, err := ParseDate(bad, "check_in")
		assert.Error(t, err, bad)
	}

	// The field name travels with the error.
	_, err := ParseDate("garbage", "check_out")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "check_out", ve.Field)
}

func TestErrorsKeepsFirstReason(t *testing.T) {
	errs := make(Errors)
	errs.Add("phone", "first")
	errs.Add("phone", "second")

	assert.Equal(t, "first", errs["phone"])
	assert.False(t, errs.Empty())
}
