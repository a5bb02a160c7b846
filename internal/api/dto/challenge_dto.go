package dto

import (
	"time"

	"bookmore/internal/api/models"
)

// ChallengeAddRequest for creating a challenge
type ChallengeAddRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Deadline    string `json:"deadline" binding:"required,datetime=2006-01-02"`
	Progress    int    `json:"progress" binding:"gte=0,lte=100"`
}

// ChallengeModifyRequest for updating a challenge, absent fields stay unchanged
type ChallengeModifyRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Progress    *int    `json:"progress" binding:"omitempty,gte=0,lte=100"`
}

// ChallengeResponse for returning challenge information
type ChallengeResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModelToChallengeResponse converts a Challenge model to ChallengeResponse DTO
func FromModelToChallengeResponse(challenge *models.Challenge) *ChallengeResponse {
	return &ChallengeResponse{
		ID:          challenge.ID,
		UserID:      challenge.UserID,
		Title:       challenge.Title,
		Description: challenge.Description,
		Deadline:    challenge.Deadline.Format(time.DateOnly),
		Progress:    challenge.Progress,
		Completed:   challenge.Completed,
		CreatedAt:   challenge.CreatedAt,
		UpdatedAt:   challenge.UpdatedAt,
	}
}

// PaginatedChallengeResponse for returning paginated challenges
type PaginatedChallengeResponse struct {
	Data       []ChallengeResponse `json:"data"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
}

// NewPaginatedChallengeResponse creates a paginated challenge response
func NewPaginatedChallengeResponse(data []ChallengeResponse, total, page, pageSize int) *PaginatedChallengeResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedChallengeResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
