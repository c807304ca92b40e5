package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError translates domain guard violations and service errors into
// HTTP status codes: argument guards are bad requests, business rule
// violations are unprocessable entities.
func HandleError(c *gin.Context, err error) {
	var argErr *domain.ArgumentError
	if errors.As(err, &argErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: argErr.Error()})
		return
	}

	var ruleErr *domain.BusinessRuleError
	if errors.As(err, &ruleErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ruleErr.Error()})
		return
	}

	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), ErrorResponse{Error: svcErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
