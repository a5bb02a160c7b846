package repository

import (
	"bookmore/internal/api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(reviewID int64) error
	FindByID(reviewID int64) (*models.Review, error)
	List(page, pageSize int) ([]models.Review, int64, error)
	ListByOwner(userID int64, page, pageSize int) ([]models.Review, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update an existing review
func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete a review by id
func (r *reviewRepository) Delete(reviewID int64) error {
	return r.db.Delete(&models.Review{}, reviewID).Error
}

// FindByID retrieves a review with its author
func (r *reviewRepository) FindByID(reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("id = ?", reviewID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List retrieves all reviews with pagination, newest first
func (r *reviewRepository) List(page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByOwner retrieves one user's reviews with pagination, newest first
func (r *reviewRepository) ListByOwner(userID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}
