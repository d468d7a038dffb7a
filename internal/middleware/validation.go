package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/validation"
)

// BindJSON decodes and validates the request body into obj. On failure it
// writes a 400 listing the rejected fields and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, validation.FromBindingError(err))
		return false
	}
	return true
}

// ParamID parses a positive integer path parameter. On failure it writes a 400 and returns false.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		HandleAPIError(c, apperrors.NewBadRequestError("Invalid "+name))
		return 0, false
	}
	return id, true
}
