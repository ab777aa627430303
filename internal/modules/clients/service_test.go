package clients

import (
	"context"
	"encoding/json"
	"testing"

	"hotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *domain.Client) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) HasDuplicate(ctx context.Context, c *domain.Client, excludeID int64) (bool, error) {
	args := m.Called(ctx, c, excludeID)
	return args.Bool(0), args.Error(1)
}

func validRequest() ClientRequest {
	return ClientRequest{
		Surname:  "Иванов",
		Name:     "Пётр",
		Phone:    "+77771234567",
		Passport: "1234567890",
		Email:    "ivanov@mail.kz",
	}
}

func TestService_Add_Success(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("HasDuplicate", mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	c, fieldErrs, err := service.Add(context.Background(), validRequest())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, int64(999), c.ID)
	assert.Equal(t, "Иванов", c.Surname)
}

func TestService_Add_Duplicate(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("HasDuplicate", mock.Anything, mock.Anything, int64(0)).Return(true, nil)

	service := NewService(repo)

	_, fieldErrs, err := service.Add(context.Background(), validRequest())
	assert.Nil(t, fieldErrs)
	assert.ErrorIs(t, err, ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Add_FieldErrorsSkipStore(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewService(repo)

	req := validRequest()
	req.Surname = "Ivanov123"
	req.Phone = "abc"

	_, fieldErrs, err := service.Add(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "surname")
	assert.Contains(t, fieldErrs, "phone")
	repo.AssertNotCalled(t, "HasDuplicate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Edit_ExcludesOwnIDFromDuplicateScan(t *testing.T) {
	repo := new(MockClientRepository)
	existing := &domain.Client{ID: 7, Surname: "Иванов", Name: "Пётр", Phone: "+77771234567"}

	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("HasDuplicate", mock.Anything, mock.Anything, int64(7)).Return(false, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(true, nil)

	service := NewService(repo)

	c, fieldErrs, err := service.Edit(context.Background(), 7, validRequest())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, int64(7), c.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_FilterSortPage(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("GetAll", mock.Anything).Return([]*domain.Client{
		{ID: 1, Surname: "Громова", Name: "Анна", Phone: "+77770000001"},
		{ID: 2, Surname: "Борисов", Name: "Иван", Phone: "+77770000002"},
		{ID: 3, Surname: "Гришин", Name: "Олег", Phone: "+77770000003"},
		{ID: 4, Surname: "Ахметова", Name: "Асель", Phone: "+77770000004"},
	}, nil)

	service := NewService(repo)

	items, total, err := service.List(context.Background(), ListParams{
		SurnamePrefix: "гр",
		SortBy:        "surname",
		Page:          1,
		PageSize:      1,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Гришин", items[0].Surname)
}

func TestService_ShortList(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("GetAll", mock.Anything).Return([]*domain.Client{
		{ID: 1, Surname: "Иванов", Name: "Пётр", Patronymic: "Сергеевич", Phone: "+77771234567"},
	}, nil)

	service := NewService(repo)

	items, total, err := service.ShortList(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Иванов П.С.", items[0].ShortName)
	assert.Equal(t, "+77771234567", items[0].Phone)
}

func TestService_ExportImportRoundTrip(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("GetAll", mock.Anything).Return([]*domain.Client{
		{ID: 1, Surname: "Иванов", Name: "Пётр", Phone: "+77771234567"},
	}, nil)

	service := NewService(repo)

	data, contentType, err := service.Export(context.Background(), "json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var items []ClientRequest
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Иванов", items[0].Surname)

	_, _, err = service.Export(context.Background(), "xml")
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestService_Import_CountsAddedAndSkipped(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("HasDuplicate", mock.Anything, mock.Anything, int64(0)).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("HasDuplicate", mock.Anything, mock.Anything, int64(0)).Return(true, nil).Once()

	service := NewService(repo)

	bad := validRequest()
	bad.Phone = "abc"

	added, skipped, err := service.Import(context.Background(), []ClientRequest{
		validRequest(), // added
		validRequest(), // duplicate, skipped
		bad,            // invalid, skipped
	})

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, skipped)
}
