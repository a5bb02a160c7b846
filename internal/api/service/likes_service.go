package service

import (
	"errors"

	"bookmore/internal/api/dto"
	"bookmore/internal/api/repository"
	"bookmore/internal/apperrors"

	"gorm.io/gorm"
)

type LikesService interface {
	Toggle(callerID, reviewID int64) (*dto.LikesResponse, error)
}

type likesService struct {
	likesRepo  repository.LikesRepository
	reviewRepo repository.ReviewRepository
}

func NewLikesService(likesRepo repository.LikesRepository, reviewRepo repository.ReviewRepository) LikesService {
	return &likesService{
		likesRepo:  likesRepo,
		reviewRepo: reviewRepo,
	}
}

// Toggle flips the caller's like on the review and returns the new flag.
// The flag and the review counter move together inside the repository
// transaction.
func (s *likesService) Toggle(callerID, reviewID int64) (*dto.LikesResponse, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ReviewNotFound)
		}
		return nil, err
	}

	liked, err := s.likesRepo.Toggle(callerID, reviewID)
	if err != nil {
		return nil, err
	}

	return &dto.LikesResponse{ReviewID: reviewID, Liked: liked}, nil
}
