package service

import (
	"testing"
	"time"

	"bookmore/internal/api/dto"
	"bookmore/internal/api/models"
	"bookmore/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockChallengeRepository mocks the ChallengeRepository interface
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(challenge *models.Challenge) error {
	args := m.Called(challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) Update(challenge *models.Challenge) error {
	args := m.Called(challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) Delete(challengeID int64) error {
	args := m.Called(challengeID)
	return args.Error(0)
}

func (m *MockChallengeRepository) FindByID(challengeID int64) (*models.Challenge, error) {
	args := m.Called(challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) List(page, pageSize int) ([]models.Challenge, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Challenge), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepository) ListByOwner(userID int64, page, pageSize int) ([]models.Challenge, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Challenge), args.Get(1).(int64), args.Error(2)
}

func TestChallengeAdd_Success(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Challenge")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Challenge).ID = 5
		}).
		Return(nil)

	resp, err := svc.Add(1, &dto.ChallengeAddRequest{
		Title:       "Read 12 books",
		Description: "one per month",
		Deadline:    "2026-12-31",
		Progress:    25,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, 25, resp.Progress)
	assert.False(t, resp.Completed)
	assert.Equal(t, "2026-12-31", resp.Deadline)
}

func TestChallengeAdd_CompletedDerivedAtFullProgress(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Challenge")).Return(nil)

	resp, err := svc.Add(1, &dto.ChallengeAddRequest{
		Title:    "Finish series",
		Deadline: "2026-12-31",
		Progress: 100,
	})

	require.NoError(t, err)
	assert.True(t, resp.Completed)
}

func TestChallengeModify_ProgressDrivesCompleted(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("FindByID", int64(5)).Return(&models.Challenge{
		ID:       5,
		UserID:   1,
		Title:    "Read 12 books",
		Deadline: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Progress: 90,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*models.Challenge")).Return(nil)

	progress := 100
	resp, err := svc.Modify(1, 5, &dto.ChallengeModifyRequest{Progress: &progress})

	require.NoError(t, err)
	assert.True(t, resp.Completed)

	// dropping below full progress clears the flag again
	repo2 := new(MockChallengeRepository)
	svc2 := NewChallengeService(repo2)
	repo2.On("FindByID", int64(5)).Return(&models.Challenge{
		ID:        5,
		UserID:    1,
		Deadline:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Progress:  100,
		Completed: true,
	}, nil)
	repo2.On("Update", mock.AnythingOfType("*models.Challenge")).Return(nil)

	progress = 80
	resp, err = svc2.Modify(1, 5, &dto.ChallengeModifyRequest{Progress: &progress})
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 80, resp.Progress)
}

func TestChallengeModify_NotFoundBeforeOwnership(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	title := "changed"
	_, err := svc.Modify(99, 404, &dto.ChallengeModifyRequest{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.New(apperrors.ChallengeNotFound))
}

func TestChallengeModify_InvalidPermission(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("FindByID", int64(5)).Return(&models.Challenge{ID: 5, UserID: 1}, nil)

	title := "changed"
	_, err := svc.Modify(2, 5, &dto.ChallengeModifyRequest{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.New(apperrors.InvalidPermission))
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestChallengeDelete_InvalidPermission(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("FindByID", int64(5)).Return(&models.Challenge{ID: 5, UserID: 1}, nil)

	_, err := svc.Delete(2, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.New(apperrors.InvalidPermission))
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestChallengeGet_NotFound(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	repo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(404)
	assert.ErrorIs(t, err, apperrors.New(apperrors.ChallengeNotFound))
}

func TestChallengeList_Paginates(t *testing.T) {
	repo := new(MockChallengeRepository)
	svc := NewChallengeService(repo)

	challenges := []models.Challenge{
		{ID: 2, UserID: 1, Title: "newer", Deadline: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 1, Title: "older", Deadline: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo.On("List", 2, 10).Return(challenges, int64(12), nil)

	resp, err := svc.List(2, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
}
