package activity

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AppendEvent(assetID uuid.UUID, eventType string, actorID uuid.UUID, eventDate time.Time) (*models.ActivityLog, error) {
	args := m.Called(assetID, eventType, actorID, eventDate)
	if entry, ok := args.Get(0).(*models.ActivityLog); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) Feed(eventType string, limit uint) ([]models.FeedEntry, error) {
	args := m.Called(eventType, limit)
	if entries, ok := args.Get(0).([]models.FeedEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func setupLedgerTest() (*MockLedgerRepository, *LedgerHandler) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockLedgerRepository)
	return mockRepo, NewHandler(mockRepo)
}

func TestAppendEvent(t *testing.T) {
	mockRepo, handler := setupLedgerTest()

	assetID := uuid.New()
	actorID := uuid.New()
	eventDate := time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		assetParam     string
		body           string
		withIdentity   bool
		setupMock      func()
		expectedStatus int
	}{
		{
			name:         "check out appended",
			assetParam:   assetID.String(),
			body:         `{"type":"check_out","date":"2025-08-12"}`,
			withIdentity: true,
			setupMock: func() {
				mockRepo.On("AppendEvent", assetID, models.EventCheckOut, actorID, eventDate).
					Return(&models.ActivityLog{ID: uuid.New(), AssetID: assetID, EventType: models.EventCheckOut}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:         "unknown asset",
			assetParam:   assetID.String(),
			body:         `{"type":"check_in","date":"2025-08-12"}`,
			withIdentity: true,
			setupMock: func() {
				mockRepo.On("AppendEvent", assetID, models.EventCheckIn, actorID, eventDate).
					Return(nil, apperrors.NewNotFoundError("asset", assetID.String()))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:         "unknown event type",
			assetParam:   assetID.String(),
			body:         `{"type":"destroyed","date":"2025-08-12"}`,
			withIdentity: true,
			setupMock: func() {
				mockRepo.On("AppendEvent", assetID, "destroyed", actorID, eventDate).
					Return(nil, apperrors.NewValidationError("type"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed date",
			assetParam:     assetID.String(),
			body:           `{"type":"check_out","date":"12/08/2025"}`,
			withIdentity:   true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid asset id",
			assetParam:     "not-a-uuid",
			body:           `{"type":"check_out","date":"2025-08-12"}`,
			withIdentity:   true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing identity",
			assetParam:     assetID.String(),
			body:           `{"type":"check_out","date":"2025-08-12"}`,
			withIdentity:   false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.assetParam}}
			c.Request = httptest.NewRequest("POST", "/assets/"+tt.assetParam+"/activity", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			if tt.withIdentity {
				c.Set("userID", actorID.String())
				c.Set("role", "user")
			}

			handler.AppendEvent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFeed(t *testing.T) {
	mockRepo, handler := setupLedgerTest()

	entries := []models.FeedEntry{
		{AssetTagID: "AST-001", Description: "ThinkPad T14", AssignedTo: "Jordan Lee", Type: "checked_out"},
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:  "unfiltered feed",
			query: "",
			setupMock: func() {
				mockRepo.On("Feed", "", uint(DefaultFeedLimit)).Return(entries, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "rendered label maps back to event type",
			query: "?type=checked_out",
			setupMock: func() {
				mockRepo.On("Feed", models.EventCheckOut, uint(DefaultFeedLimit)).Return(entries, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown filter rejected",
			query:          "?type=exploded",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/activity/feed"+tt.query, nil)

			handler.Feed(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}
