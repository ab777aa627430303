package domain

import (
	"fmt"
	"strings"
)

type Client struct {
	ID         int64  `json:"id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic,omitempty"`
	Phone      string `json:"phone"`
	Passport   string `json:"passport,omitempty"`
	Email      string `json:"email,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// ClientFields carries raw field values for constructing a Client.
type ClientFields struct {
	Surname    string
	Name       string
	Patronymic string
	Phone      string
	Passport   string
	Email      string
	Comment    string
}

// NewClient validates every field and returns an invariant-clean Client.
// On failure it returns the full per-field error map.
func NewClient(f ClientFields) (*Client, Errors) {
	errs := make(Errors)
	c := &Client{Comment: strings.TrimSpace(f.Comment)}

	var err error
	if c.Surname, err = ValidateName(f.Surname, "surname", true); err != nil {
		errs.AddErr(err)
	}
	if c.Name, err = ValidateName(f.Name, "name", true); err != nil {
		errs.AddErr(err)
	}
	if c.Patronymic, err = ValidateName(f.Patronymic, "patronymic", false); err != nil {
		errs.AddErr(err)
	}
	if c.Phone, err = ValidatePhone(f.Phone, "phone"); err != nil {
		errs.AddErr(err)
	}
	if c.Passport, err = ValidatePassport(f.Passport, "passport"); err != nil {
		errs.AddErr(err)
	}
	if c.Email, err = ValidateEmail(f.Email, "email"); err != nil {
		errs.AddErr(err)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return c, nil
}

// SameTuple reports whether two clients carry an identical field tuple.
// Used by the duplicate scan on add/edit.
func (c *Client) SameTuple(other *Client) bool {
	return c.Surname == other.Surname &&
		c.Name == other.Name &&
		c.Patronymic == other.Patronymic &&
		c.Phone == other.Phone &&
		c.Passport == other.Passport &&
		c.Email == other.Email &&
		c.Comment == other.Comment
}

// ShortInfo renders "Surname N.P." for compact listings.
func (c *Client) ShortInfo() string {
	s := c.Surname
	if c.Name != "" {
		s += fmt.Sprintf(" %s.", initial(c.Name))
	}
	if c.Patronymic != "" {
		s += fmt.Sprintf("%s.", initial(c.Patronymic))
	}
	return s
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
