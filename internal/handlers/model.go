// internal/handlers/model.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inference-back/internal/core/services"
)

func GetModel(svc *services.ModelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mdl, err := svc.GetByID(c.Request.Context(), c.Param("model_id"), tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, mdl)
	}
}

func ListModels(svc *services.ModelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		models, err := svc.GetList(c.Request.Context(), tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"models": models})
	}
}
