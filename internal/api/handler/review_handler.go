package handler

import (
	"bookmore/internal/api/dto"
	"bookmore/internal/api/middleware"
	"bookmore/internal/api/service"
	"bookmore/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	likesService  service.LikesService
}

func NewReviewHandler(reviewService service.ReviewService, likesService service.LikesService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		likesService:  likesService,
	}
}

// RegisterRoutes registers review-related routes, all behind auth.
func (h *ReviewHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	reviews := api.Group("/reviews", auth)
	{
		reviews.POST("", h.Add)
		reviews.GET("", h.List)
		reviews.GET("/:id", h.Get)
		reviews.PATCH("/:id", h.Modify)
		reviews.PUT("/:id", h.Modify)
		reviews.DELETE("/:id", h.Delete)
		reviews.POST("/:id/likes", h.ToggleLikes)
	}
}

// Add creates a new review owned by the caller
// POST /api/v1/reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	var req dto.ReviewAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.reviewService.Add(callerID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Modify updates a review owned by the caller
// PATCH/PUT /api/v1/reviews/:id
func (h *ReviewHandler) Modify(c *gin.Context) {
	reviewID, valid := pathID(c)
	if !valid {
		return
	}

	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	var req dto.ReviewModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.reviewService.Modify(callerID, reviewID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Delete removes a review owned by the caller
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, valid := pathID(c)
	if !valid {
		return
	}

	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	resp, err := h.reviewService.Delete(callerID, reviewID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Get returns a review detail
// GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, valid := pathID(c)
	if !valid {
		return
	}

	resp, err := h.reviewService.Get(reviewID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// List returns a page of reviews
// GET /api/v1/reviews?page=1&size=20
func (h *ReviewHandler) List(c *gin.Context) {
	page, pageSize := paging(c)

	resp, err := h.reviewService.List(page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// ToggleLikes flips the caller's like on a review
// POST /api/v1/reviews/:id/likes
func (h *ReviewHandler) ToggleLikes(c *gin.Context) {
	reviewID, valid := pathID(c)
	if !valid {
		return
	}

	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	resp, err := h.likesService.Toggle(callerID, reviewID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}
