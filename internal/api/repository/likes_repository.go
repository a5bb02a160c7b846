package repository

import (
	"errors"

	"bookmore/internal/api/models"

	"gorm.io/gorm"
)

type LikesRepository interface {
	FindByUserAndReview(userID, reviewID int64) (*models.Likes, error)
	Toggle(userID, reviewID int64) (bool, error)
}

type likesRepository struct {
	db *gorm.DB
}

func NewLikesRepository(db *gorm.DB) LikesRepository {
	return &likesRepository{db: db}
}

// FindByUserAndReview retrieves the likes row for a (user, review) pair
func (r *likesRepository) FindByUserAndReview(userID, reviewID int64) (*models.Likes, error) {
	var likes models.Likes
	err := r.db.Where("user_id = ? AND review_id = ?", userID, reviewID).First(&likes).Error
	if err != nil {
		return nil, err
	}
	return &likes, nil
}

// Toggle flips the liked flag for the (user, review) pair and moves the
// review's counter by the matching delta. Both writes happen in one
// transaction so the flag and the counter never diverge. The row is created
// on the first toggle and reused afterwards.
func (r *likesRepository) Toggle(userID, reviewID int64) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row models.Likes
		err := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.Likes{UserID: userID, ReviewID: reviewID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		delta := 1
		if row.Liked {
			delta = -1
		}

		if err := tx.Model(&row).Update("liked", !row.Liked).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
			return err
		}

		liked = !row.Liked
		return nil
	})

	return liked, err
}
