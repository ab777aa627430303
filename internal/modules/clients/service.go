package clients

import (
	"context"
	"encoding/json"
	"errors"

	"hotel/internal/domain"
	"hotel/internal/query"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Service struct {
	repo ClientRepository
}

func NewService(repo ClientRepository) *Service {
	return &Service{repo: repo}
}

// compose builds the query pipeline for the supplied parameters: one
// predicate per filter, at most one sorter.
func (s *Service) compose(p ListParams) *query.Composer[*domain.Client] {
	c := query.New[*domain.Client](s.repo)

	if p.ID > 0 {
		c.AddFilter(ByID(p.ID))
	}
	if p.SurnamePrefix != "" {
		c.AddFilter(BySurnamePrefix(p.SurnamePrefix))
	}
	if p.NameContains != "" {
		c.AddFilter(ByNameContains(p.NameContains))
	}
	if p.PhonePrefix != "" {
		c.AddFilter(ByPhonePrefix(p.PhonePrefix))
	}

	if less, ok := Sorters[p.SortBy]; ok {
		c.SetSorter(less, p.SortDesc)
	}
	return c
}

func (s *Service) List(ctx context.Context, p ListParams) ([]*domain.Client, int, error) {
	c := s.compose(p)

	total, err := c.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, err := c.List(ctx, p.PageSize, p.Page)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ShortList returns the compact projection of the same filtered set.
func (s *Service) ShortList(ctx context.Context, p ListParams) ([]ShortInfoItem, int, error) {
	items, total, err := s.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ShortInfoItem, 0, len(items))
	for _, c := range items {
		out = append(out, ShortInfoItem{ID: c.ID, ShortName: c.ShortInfo(), Phone: c.Phone})
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

// Add validates the raw fields, enforces the duplicate-tuple invariant
// and inserts. Field failures come back in the Errors map, business
// failures as sentinel errors.
func (s *Service) Add(ctx context.Context, req ClientRequest) (*domain.Client, domain.Errors, error) {
	c, fieldErrs := domain.NewClient(domain.ClientFields{
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Passport:   req.Passport,
		Email:      req.Email,
		Comment:    req.Comment,
	})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	dup, err := s.repo.HasDuplicate(ctx, c, 0)
	if err != nil {
		return nil, nil, err
	}
	if dup {
		return nil, nil, ErrDuplicate
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, nil, err
	}
	return c, nil, nil
}

// Edit is a full field replacement of an existing client.
func (s *Service) Edit(ctx context.Context, id int64, req ClientRequest) (*domain.Client, domain.Errors, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, nil, err
	}

	c, fieldErrs := domain.NewClient(domain.ClientFields{
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Passport:   req.Passport,
		Email:      req.Email,
		Comment:    req.Comment,
	})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	c.ID = id

	dup, err := s.repo.HasDuplicate(ctx, c, id)
	if err != nil {
		return nil, nil, err
	}
	if dup {
		return nil, nil, ErrDuplicate
	}

	ok, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrNotFound
	}
	return c, nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Export serializes the whole client collection as JSON or YAML.
func (s *Service) Export(ctx context.Context, format string) ([]byte, string, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "", "json":
		data, err := json.MarshalIndent(all, "", "  ")
		return data, "application/json", err
	case "yaml", "yml":
		data, err := yaml.Marshal(all)
		return data, "application/yaml", err
	default:
		return nil, "", ErrBadFormat
	}
}

// Import adds every valid, non-duplicate entry from an exported
// collection. Invalid or duplicate entries are counted and skipped.
func (s *Service) Import(ctx context.Context, items []ClientRequest) (added, skipped int, err error) {
	for _, req := range items {
		_, fieldErrs, addErr := s.Add(ctx, req)
		if addErr != nil {
			if errors.Is(addErr, ErrDuplicate) {
				skipped++
				continue
			}
			return added, skipped, addErr
		}
		if fieldErrs != nil {
			skipped++
			continue
		}
		added++
	}
	return added, skipped, nil
}
