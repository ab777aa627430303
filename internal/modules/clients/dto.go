package clients

// ClientRequest is the raw field map for add/edit. Field rules are
// enforced by the domain validators, so only presence is checked here.
type ClientRequest struct {
	Surname    string `json:"surname" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Patronymic string `json:"patronymic"`
	Phone      string `json:"phone" validate:"required"`
	Passport   string `json:"passport"`
	Email      string `json:"email"`
	Comment    string `json:"comment"`
}

// ListParams carries the parsed filter/sort/page query of GET /clients.
type ListParams struct {
	Page     int
	PageSize int

	ID            int64
	SurnamePrefix string
	NameContains  string
	PhonePrefix   string

	SortBy   string
	SortDesc bool
}

// ShortInfoItem is the compact projection for GET /clients/short.
type ShortInfoItem struct {
	ID        int64  `json:"id"`
	ShortName string `json:"short_name"`
	Phone     string `json:"phone"`
}
