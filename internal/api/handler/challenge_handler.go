package handler

import (
	"bookmore/internal/api/dto"
	"bookmore/internal/api/middleware"
	"bookmore/internal/api/service"
	"bookmore/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeService service.ChallengeService
}

func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// RegisterRoutes registers challenge-related routes, all behind auth.
func (h *ChallengeHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	challenges := api.Group("/challenges", auth)
	{
		challenges.POST("", h.Add)
		challenges.GET("", h.List)
		challenges.GET("/:id", h.Get)
		challenges.PATCH("/:id", h.Modify)
		challenges.PUT("/:id", h.Modify)
		challenges.DELETE("/:id", h.Delete)
	}
}

// Add creates a new challenge owned by the caller
// POST /api/v1/challenges
func (h *ChallengeHandler) Add(c *gin.Context) {
	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	var req dto.ChallengeAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.challengeService.Add(callerID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Modify updates a challenge owned by the caller
// PATCH/PUT /api/v1/challenges/:id
func (h *ChallengeHandler) Modify(c *gin.Context) {
	challengeID, valid := pathID(c)
	if !valid {
		return
	}

	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	var req dto.ChallengeModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.challengeService.Modify(callerID, challengeID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Delete removes a challenge owned by the caller
// DELETE /api/v1/challenges/:id
func (h *ChallengeHandler) Delete(c *gin.Context) {
	challengeID, valid := pathID(c)
	if !valid {
		return
	}

	callerID, exists := middleware.CallerID(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	resp, err := h.challengeService.Delete(callerID, challengeID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Get returns a challenge detail
// GET /api/v1/challenges/:id
func (h *ChallengeHandler) Get(c *gin.Context) {
	challengeID, valid := pathID(c)
	if !valid {
		return
	}

	resp, err := h.challengeService.Get(challengeID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// List returns a page of challenges
// GET /api/v1/challenges?page=1&size=20
func (h *ChallengeHandler) List(c *gin.Context) {
	page, pageSize := paging(c)

	resp, err := h.challengeService.List(page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}
