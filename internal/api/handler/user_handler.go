package handler

import (
	"bookmore/internal/api/dto"
	"bookmore/internal/api/middleware"
	"bookmore/internal/api/service"
	"bookmore/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user-related routes. limiter guards the
// unauthenticated endpoints, auth the rest.
func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, auth, limiter gin.HandlerFunc) {
	users := api.Group("/users")
	{
		users.POST("/join", limiter, h.Join)
		users.POST("/login", limiter, h.Login)

		users.POST("/verify", auth, h.Verify)
		users.POST("/:id", auth, h.Update)
		users.DELETE("/:id", auth, h.Delete)
	}
}

// Join registers a new account
// POST /api/v1/users/join
func (h *UserHandler) Join(c *gin.Context) {
	var req dto.UserJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.userService.Join(&req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Login authenticates and returns a signed token
// POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Verify re-validates the caller's identity
// POST /api/v1/users/verify
func (h *UserHandler) Verify(c *gin.Context) {
	email, exists := middleware.CallerEmail(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	resp, err := h.userService.Verify(email)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Update applies a partial profile update
// POST /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	targetID, valid := pathID(c)
	if !valid {
		return
	}

	email, exists := middleware.CallerEmail(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	resp, err := h.userService.InfoUpdate(email, targetID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}

// Delete removes the account
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	targetID, valid := pathID(c)
	if !valid {
		return
	}

	email, exists := middleware.CallerEmail(c)
	if !exists {
		fail(c, apperrors.New(apperrors.InvalidToken))
		return
	}

	resp, err := h.userService.Delete(email, targetID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, resp)
}
