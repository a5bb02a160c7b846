package dto

import (
	"time"

	"bookmore/internal/api/models"
)

// ReviewAddRequest for creating a review
type ReviewAddRequest struct {
	Isbn    string `json:"isbn" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
	Score   int    `json:"score" binding:"gte=0,lte=10"`
}

// ReviewModifyRequest for updating a review, absent fields stay unchanged
type ReviewModifyRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1,max=5000"`
	Score   *int    `json:"score" binding:"omitempty,gte=0,lte=10"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Nickname   string    `json:"nickname,omitempty"`
	Isbn       string    `json:"isbn"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Score      int       `json:"score"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		Nickname:   review.User.Nickname,
		Isbn:       review.Isbn,
		Title:      review.Title,
		Content:    review.Content,
		Score:      review.Score,
		LikesCount: review.LikesCount,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

// LikesResponse carries the new flag value after a toggle
type LikesResponse struct {
	ReviewID int64 `json:"review_id"`
	Liked    bool  `json:"liked"`
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedReviewResponse creates a paginated review response
func NewPaginatedReviewResponse(data []ReviewResponse, total, page, pageSize int) *PaginatedReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
