// internal/handlers/error.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inference-back/internal/core/model"
)

func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindUnprocessable:
		return http.StatusUnprocessableEntity
	case model.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError renders a service failure as {"detail": ...} with the status
// of its kind. Errors that are not LogicErrors leak no detail.
func abortWithError(c *gin.Context, err error) {
	var logicErr *model.LogicError
	if !errors.As(err, &logicErr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}
	if logicErr.Kind == model.KindUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(statusForKind(logicErr.Kind), gin.H{"detail": logicErr.Detail})
}
