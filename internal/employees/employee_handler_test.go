package employees

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetEmployees() ([]models.Employee, error) {
	args := m.Called()
	if employees, ok := args.Get(0).([]models.Employee); ok {
		return employees, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	args := m.Called(id)
	if employee, ok := args.Get(0).(*models.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) PersistEmployee(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(id uuid.UUID, changes goqu.Record) (*models.Employee, error) {
	args := m.Called(id, changes)
	if employee, ok := args.Get(0).(*models.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupEmployeeTest() (*MockEmployeeRepository, *EmployeeHandler) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockEmployeeRepository)
	return mockRepo, NewHandler(mockRepo)
}

func TestCreateEmployee(t *testing.T) {
	mockRepo, handler := setupEmployeeTest()

	tests := []struct {
		name           string
		body           string
		setupMock      func()
		expectedStatus int
		expectedFields []string
	}{
		{
			name: "valid employee",
			body: `{"full_name":"Jordan Lee","phone":"+91 98765 43210","email":"jordan.lee@example.com"}`,
			setupMock: func() {
				mockRepo.On("PersistEmployee", mock.MatchedBy(func(e *models.Employee) bool {
					return e.FullName == "Jordan Lee" && e.Email == "jordan.lee@example.com"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "every missing field reported",
			body:           `{"title":"Engineer"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"full_name", "phone", "email"},
		},
		{
			name:           "malformed email",
			body:           `{"full_name":"Jordan Lee","phone":"+91 98765 43210","email":"not-an-email"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"email"},
		},
		{
			name: "duplicate email",
			body: `{"full_name":"Jordan Lee","phone":"+91 98765 43210","email":"jordan.lee@example.com"}`,
			setupMock: func() {
				mockRepo.On("PersistEmployee", mock.Anything).
					Return(apperrors.WrapDBError("employees_email_key", "23505"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/employees", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateEmployee(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if len(tt.expectedFields) > 0 {
				var response struct {
					Fields []string `json:"fields"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedFields, response.Fields)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	mockRepo, handler := setupEmployeeTest()

	id := uuid.New()
	body := `{"full_name":"Jordan Lee","phone":"+91 98765 43210","email":"jordan.lee@example.com"}`

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "existing employee updated",
			setupMock: func() {
				mockRepo.On("UpdateEmployee", id, mock.Anything).
					Return(&models.Employee{ID: id, FullName: "Jordan Lee"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown employee",
			setupMock: func() {
				mockRepo.On("UpdateEmployee", id, mock.Anything).
					Return(nil, apperrors.NewNotFoundError("employee", id.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "email taken by another employee",
			setupMock: func() {
				mockRepo.On("UpdateEmployee", id, mock.Anything).
					Return(nil, apperrors.WrapDBError("employees_email_key", "23505"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: id.String()}}
			c.Request = httptest.NewRequest("PUT", "/employees/"+id.String(), bytes.NewBufferString(body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.UpdateEmployee(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteEmployee(t *testing.T) {
	mockRepo, handler := setupEmployeeTest()

	id := uuid.New()
	mockRepo.On("DeleteEmployee", id).Return(apperrors.NewNotFoundError("employee", id.String()))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("DELETE", "/employees/"+id.String(), nil)

	handler.DeleteEmployee(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}
