package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, errs := NewClient(ClientFields{
		Surname:    "Иванов",
		Name:       "Пётр",
		Patronymic: "Сергеевич",
		Phone:      "+77771234567",
		Passport:   "1234567890",
		Email:      "ivanov@mail.kz",
		Comment:    "VIP",
	})
	require.Nil(t, errs)
	assert.Equal(t, "Иванов", c.Surname)
	assert.Equal(t, "VIP", c.Comment)
}

func TestNewClientCollectsAllFieldErrors(t *testing.T) {
	_, errs := NewClient(ClientFields{
		Surname:  "Ivanov123",
		Name:     "",
		Phone:    "abc",
		Passport: "12345",
		Email:    "not-an-email",
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "surname")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "passport")
	assert.Contains(t, errs, "email")
}

func TestClientSameTuple(t *testing.T) {
	a, errs := NewClient(ClientFields{Surname: "Иванов", Name: "Пётр", Phone: "+77771234567"})
	require.Nil(t, errs)
	b, errs := NewClient(ClientFields{Surname: "Иванов", Name: "Пётр", Phone: "+77771234567"})
	require.Nil(t, errs)

	assert.True(t, a.SameTuple(b))

	b.Comment = "different"
	assert.False(t, a.SameTuple(b))
}

func TestClientShortInfo(t *testing.T) {
	c := &Client{Surname: "Иванов", Name: "Пётр", Patronymic: "Сергеевич"}
	assert.Equal(t, "Иванов П.С.", c.ShortInfo())

	c = &Client{Surname: "Smith", Name: "John"}
	assert.Equal(t, "Smith J.", c.ShortInfo())

	c = &Client{Surname: "Smith"}
	assert.Equal(t, "Smith", c.ShortInfo())
}
