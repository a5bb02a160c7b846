package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookmore/internal/api/dto"
	"bookmore/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChallengeService mocks the ChallengeService interface
type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Add(callerID int64, req *dto.ChallengeAddRequest) (*dto.ChallengeResponse, error) {
	args := m.Called(callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChallengeResponse), args.Error(1)
}

func (m *MockChallengeService) Modify(callerID, challengeID int64, req *dto.ChallengeModifyRequest) (*dto.ChallengeResponse, error) {
	args := m.Called(callerID, challengeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChallengeResponse), args.Error(1)
}

func (m *MockChallengeService) Delete(callerID, challengeID int64) (*dto.MessageResponse, error) {
	args := m.Called(callerID, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockChallengeService) Get(challengeID int64) (*dto.ChallengeResponse, error) {
	args := m.Called(challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChallengeResponse), args.Error(1)
}

func (m *MockChallengeService) List(page, pageSize int) (*dto.PaginatedChallengeResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedChallengeResponse), args.Error(1)
}

// identity stub standing in for the auth middleware
func asUser(id int64, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Set("email", email)
	}
}

func patchJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("PATCH", path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChallengeModifyEndpoint_NonOwner(t *testing.T) {
	mockService := new(MockChallengeService)
	h := NewChallengeHandler(mockService)
	router := setupRouter()
	router.PATCH("/challenges/:id", asUser(2, "other@b.com"), h.Modify)

	mockService.On("Modify", int64(2), int64(1), mock.AnythingOfType("*dto.ChallengeModifyRequest")).
		Return(nil, apperrors.New(apperrors.InvalidPermission))

	title := "stolen"
	w := patchJSON(t, router, "/challenges/1", dto.ChallengeModifyRequest{Title: &title})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "ERROR", env.ResultCode)

	var result dto.ErrorResponse
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "INVALID_PERMISSION", result.ErrorCode)
}

func TestChallengeModifyEndpoint_Owner(t *testing.T) {
	mockService := new(MockChallengeService)
	h := NewChallengeHandler(mockService)
	router := setupRouter()
	router.PATCH("/challenges/:id", asUser(1, "owner@b.com"), h.Modify)

	mockService.On("Modify", int64(1), int64(1), mock.AnythingOfType("*dto.ChallengeModifyRequest")).
		Return(&dto.ChallengeResponse{
			ID:        1,
			UserID:    1,
			Title:     "Read 12 books",
			Deadline:  "2026-12-31",
			Progress:  100,
			Completed: true,
		}, nil)

	progress := 100
	w := patchJSON(t, router, "/challenges/1", dto.ChallengeModifyRequest{Progress: &progress})

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "SUCCESS", env.ResultCode)

	var result dto.ChallengeResponse
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, 100, result.Progress)
	assert.True(t, result.Completed)
	mockService.AssertExpectations(t)
}

func TestChallengeModifyEndpoint_NotFound(t *testing.T) {
	mockService := new(MockChallengeService)
	h := NewChallengeHandler(mockService)
	router := setupRouter()
	router.PATCH("/challenges/:id", asUser(1, "owner@b.com"), h.Modify)

	mockService.On("Modify", int64(1), int64(404), mock.AnythingOfType("*dto.ChallengeModifyRequest")).
		Return(nil, apperrors.New(apperrors.ChallengeNotFound))

	title := "missing"
	w := patchJSON(t, router, "/challenges/404", dto.ChallengeModifyRequest{Title: &title})

	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	var result dto.ErrorResponse
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "CHALLENGE_NOT_FOUND", result.ErrorCode)
}

func TestChallengeGetEndpoint_DatabaseErrorIsOpaque(t *testing.T) {
	mockService := new(MockChallengeService)
	h := NewChallengeHandler(mockService)
	router := setupRouter()
	router.GET("/challenges/:id", asUser(1, "owner@b.com"), h.Get)

	mockService.On("Get", int64(1)).Return(nil, assert.AnError)

	req, _ := http.NewRequest("GET", "/challenges/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env := decodeEnvelope(t, w)
	var result dto.ErrorResponse
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "DATABASE_ERROR", result.ErrorCode)
	// no internal detail leaks
	assert.NotContains(t, result.Message, assert.AnError.Error())
}

func TestChallengeListEndpoint_PagingDefaults(t *testing.T) {
	mockService := new(MockChallengeService)
	h := NewChallengeHandler(mockService)
	router := setupRouter()
	router.GET("/challenges", asUser(1, "owner@b.com"), h.List)

	mockService.On("List", 1, 20).
		Return(dto.NewPaginatedChallengeResponse(nil, 0, 1, 20), nil)

	req, _ := http.NewRequest("GET", "/challenges?page=0&size=1000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
