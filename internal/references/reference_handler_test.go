package references

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) GetSites() ([]models.Site, error) {
	args := m.Called()
	if sites, ok := args.Get(0).([]models.Site); ok {
		return sites, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReferenceStore) PersistSite(site *models.Site) error {
	args := m.Called(site)
	return args.Error(0)
}

func (m *MockReferenceStore) GetLocations(siteID *uuid.UUID) ([]models.Location, error) {
	args := m.Called(siteID)
	if locations, ok := args.Get(0).([]models.Location); ok {
		return locations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReferenceStore) PersistLocation(location *models.Location) error {
	args := m.Called(location)
	return args.Error(0)
}

func (m *MockReferenceStore) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReferenceStore) PersistCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func setupReferenceTest() (*MockReferenceStore, *ReferenceHandler) {
	gin.SetMode(gin.TestMode)
	mockStore := new(MockReferenceStore)
	return mockStore, NewReferenceHandler(mockStore)
}

func TestCreateSite(t *testing.T) {
	mockStore, handler := setupReferenceTest()

	tests := []struct {
		name           string
		body           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "site created",
			body: `{"name":"Bengaluru HQ"}`,
			setupMock: func() {
				mockStore.On("PersistSite", mock.MatchedBy(func(s *models.Site) bool {
					return s.Name == "Bengaluru HQ"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank name rejected",
			body:           `{"name":""}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: `{"name":"Bengaluru HQ"}`,
			setupMock: func() {
				mockStore.On("PersistSite", mock.Anything).
					Return(apperrors.WrapDBError("sites_name_key", "23505"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/sites", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateSite(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestListLocations(t *testing.T) {
	mockStore, handler := setupReferenceTest()

	siteID := uuid.New()
	locations := []models.Location{
		{ID: uuid.New(), Name: "3rd Floor", SiteID: uuid.NullUUID{UUID: siteID, Valid: true}},
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:  "unfiltered",
			query: "",
			setupMock: func() {
				mockStore.On("GetLocations", (*uuid.UUID)(nil)).Return(locations, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "filtered by site",
			query: "?site_id=" + siteID.String(),
			setupMock: func() {
				mockStore.On("GetLocations", &siteID).Return(locations, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid site id",
			query:          "?site_id=not-a-uuid",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/locations"+tt.query, nil)

			handler.ListLocations(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestListCategories(t *testing.T) {
	mockStore, handler := setupReferenceTest()

	categories := []models.Category{
		{ID: uuid.New(), Name: "Laptops"},
		{ID: uuid.New(), Name: "Monitors"},
	}
	mockStore.On("GetCategories").Return(categories, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/categories", nil)

	handler.ListCategories(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Laptops", got[0].Name)
}
