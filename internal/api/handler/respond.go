package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bookmore/internal/api/dto"
	"bookmore/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ok writes a SUCCESS envelope.
func ok(c *gin.Context, result any) {
	c.JSON(http.StatusOK, dto.Success(result))
}

// fail maps any error to its envelope and status. Taxonomy errors carry their
// declared status; everything else (persistence faults included) is reported
// as DATABASE_ERROR without leaking internal detail.
func fail(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.New(apperrors.DatabaseError)
	}
	c.JSON(appErr.Status(), dto.Error(string(appErr.Kind), appErr.Message))
}

// failValidation rejects a request body before the service runs. A malformed
// email gets its taxonomy kind; any other field failure carries the
// validation message itself as the result.
func failValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "email" {
				appErr := apperrors.New(apperrors.InvalidEmailFormat)
				c.JSON(appErr.Status(), dto.Error(string(appErr.Kind), appErr.Message))
				return
			}
		}
	}
	c.JSON(http.StatusBadRequest, dto.ResultResponse{ResultCode: "ERROR", Result: err.Error()})
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ResultResponse{ResultCode: "ERROR", Result: "invalid id"})
		return 0, false
	}
	return id, true
}

// paging parses page/size query parameters with the usual bounds.
func paging(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
