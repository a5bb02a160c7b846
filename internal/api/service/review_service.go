package service

import (
	"errors"

	"bookmore/internal/api/dto"
	"bookmore/internal/api/models"
	"bookmore/internal/api/repository"
	"bookmore/internal/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Add(callerID int64, req *dto.ReviewAddRequest) (*dto.ReviewResponse, error)
	Modify(callerID, reviewID int64, req *dto.ReviewModifyRequest) (*dto.ReviewResponse, error)
	Delete(callerID, reviewID int64) (*dto.MessageResponse, error)
	Get(reviewID int64) (*dto.ReviewResponse, error)
	List(page, pageSize int) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// Add persists a new review owned by the caller.
func (s *reviewService) Add(callerID int64, req *dto.ReviewAddRequest) (*dto.ReviewResponse, error) {
	review := &models.Review{
		UserID:  callerID,
		Isbn:    req.Isbn,
		Title:   req.Title,
		Content: req.Content,
		Score:   req.Score,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	// reload with the author attached
	review, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// Modify applies field updates after the not-found and ownership checks,
// in that order.
func (s *reviewService) Modify(callerID, reviewID int64, req *dto.ReviewModifyRequest) (*dto.ReviewResponse, error) {
	review, err := s.findOwned(callerID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// Delete removes the review after the not-found and ownership checks.
func (s *reviewService) Delete(callerID, reviewID int64) (*dto.MessageResponse, error) {
	review, err := s.findOwned(callerID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Delete(review.ID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{ID: review.ID, Message: "review deleted"}, nil
}

// Get returns the detail projection; any authenticated caller may read.
func (s *reviewService) Get(reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ReviewNotFound)
		}
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

// List returns a page of reviews, newest first.
func (s *reviewService) List(page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	reviews, total, err := s.reviewRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&review))
	}

	return dto.NewPaginatedReviewResponse(responses, int(total), page, pageSize), nil
}

func (s *reviewService) findOwned(callerID, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ReviewNotFound)
		}
		return nil, err
	}
	if review.UserID != callerID {
		return nil, apperrors.New(apperrors.InvalidPermission)
	}
	return review, nil
}
