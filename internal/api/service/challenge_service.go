package service

import (
	"errors"
	"time"

	"bookmore/internal/api/dto"
	"bookmore/internal/api/models"
	"bookmore/internal/api/repository"
	"bookmore/internal/apperrors"

	"gorm.io/gorm"
)

type ChallengeService interface {
	Add(callerID int64, req *dto.ChallengeAddRequest) (*dto.ChallengeResponse, error)
	Modify(callerID, challengeID int64, req *dto.ChallengeModifyRequest) (*dto.ChallengeResponse, error)
	Delete(callerID, challengeID int64) (*dto.MessageResponse, error)
	Get(challengeID int64) (*dto.ChallengeResponse, error)
	List(page, pageSize int) (*dto.PaginatedChallengeResponse, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo}
}

// Add persists a new challenge owned by the caller. Completed is derived from
// progress, never taken from the request.
func (s *challengeService) Add(callerID int64, req *dto.ChallengeAddRequest) (*dto.ChallengeResponse, error) {
	deadline, err := time.Parse(time.DateOnly, req.Deadline)
	if err != nil {
		return nil, err
	}

	challenge := &models.Challenge{
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
	}
	challenge.SetProgress(req.Progress)

	if err := s.challengeRepo.Create(challenge); err != nil {
		return nil, err
	}

	return dto.FromModelToChallengeResponse(challenge), nil
}

// Modify applies field updates after the not-found and ownership checks,
// in that order.
func (s *challengeService) Modify(callerID, challengeID int64, req *dto.ChallengeModifyRequest) (*dto.ChallengeResponse, error) {
	challenge, err := s.findOwned(callerID, challengeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		challenge.Title = *req.Title
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.DateOnly, *req.Deadline)
		if err != nil {
			return nil, err
		}
		challenge.Deadline = deadline
	}
	if req.Progress != nil {
		challenge.SetProgress(*req.Progress)
	}

	if err := s.challengeRepo.Update(challenge); err != nil {
		return nil, err
	}

	return dto.FromModelToChallengeResponse(challenge), nil
}

// Delete removes the challenge after the not-found and ownership checks.
func (s *challengeService) Delete(callerID, challengeID int64) (*dto.MessageResponse, error) {
	challenge, err := s.findOwned(callerID, challengeID)
	if err != nil {
		return nil, err
	}

	if err := s.challengeRepo.Delete(challenge.ID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{ID: challenge.ID, Message: "challenge deleted"}, nil
}

// Get returns the detail projection; any authenticated caller may read.
func (s *challengeService) Get(challengeID int64) (*dto.ChallengeResponse, error) {
	challenge, err := s.challengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ChallengeNotFound)
		}
		return nil, err
	}
	return dto.FromModelToChallengeResponse(challenge), nil
}

// List returns a page of challenges, newest first.
func (s *challengeService) List(page, pageSize int) (*dto.PaginatedChallengeResponse, error) {
	challenges, total, err := s.challengeRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ChallengeResponse, 0, len(challenges))
	for _, challenge := range challenges {
		responses = append(responses, *dto.FromModelToChallengeResponse(&challenge))
	}

	return dto.NewPaginatedChallengeResponse(responses, int(total), page, pageSize), nil
}

func (s *challengeService) findOwned(callerID, challengeID int64) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ChallengeNotFound)
		}
		return nil, err
	}
	if challenge.UserID != callerID {
		return nil, apperrors.New(apperrors.InvalidPermission)
	}
	return challenge, nil
}
