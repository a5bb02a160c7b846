package repository

import (
	"bookmore/internal/api/models"

	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(challenge *models.Challenge) error
	Update(challenge *models.Challenge) error
	Delete(challengeID int64) error
	FindByID(challengeID int64) (*models.Challenge, error)
	List(page, pageSize int) ([]models.Challenge, int64, error)
	ListByOwner(userID int64, page, pageSize int) ([]models.Challenge, int64, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

// Create a new challenge
func (r *challengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

// Update an existing challenge
func (r *challengeRepository) Update(challenge *models.Challenge) error {
	return r.db.Save(challenge).Error
}

// Delete a challenge by id
func (r *challengeRepository) Delete(challengeID int64) error {
	return r.db.Delete(&models.Challenge{}, challengeID).Error
}

// FindByID retrieves a challenge by its ID
func (r *challengeRepository) FindByID(challengeID int64) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// List retrieves all challenges with pagination, newest first
func (r *challengeRepository) List(page, pageSize int) ([]models.Challenge, int64, error) {
	var challenges []models.Challenge
	var total int64

	if err := r.db.Model(&models.Challenge{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&challenges).Error

	if err != nil {
		return nil, 0, err
	}

	return challenges, total, nil
}

// ListByOwner retrieves one user's challenges with pagination, newest first
func (r *challengeRepository) ListByOwner(userID int64, page, pageSize int) ([]models.Challenge, int64, error) {
	var challenges []models.Challenge
	var total int64

	if err := r.db.Model(&models.Challenge{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&challenges).Error

	if err != nil {
		return nil, 0, err
	}

	return challenges, total, nil
}
