package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "invalid request body"

// badRequest answers 400 with a detail body describing err.
func badRequest(c *gin.Context, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Message: "validation failed", Errors: ve.Fields})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: "email already registered",
			Errors:  map[string]string{"email": "is already taken"},
		})
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}
}

// isClientError tells input problems apart from store failures.
func isClientError(err error) bool {
	var ve *common.ValidationError
	return errors.As(err, &ve) || errors.Is(err, common.ErrorAlreadyExists)
}
