// internal/handlers/inference.go
package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inference-back/internal/core/model"
	"inference-back/internal/core/services"
	"inference-back/internal/middleware"
)

func tokenFrom(c *gin.Context) string {
	return c.GetString(middleware.TokenKey)
}

func GetInference(svc *services.InferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inference, err := svc.GetByID(c.Request.Context(), c.Param("inference_id"), c.Param("user_id"), tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, inference)
	}
}

func ListInferences(svc *services.InferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inferences, err := svc.GetList(c.Request.Context(), c.Param("user_id"), tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"inferences": inferences})
	}
}

// CreateInference accepts a multipart form: age, sex and model_id fields plus
// one file per payload type.
func CreateInference(svc *services.InferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		age, err := strconv.Atoi(c.PostForm("age"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "age must be an integer"})
			return
		}
		form := model.InferenceCreationForm{
			Age:     age,
			Sex:     c.PostForm("sex"),
			ModelID: c.PostForm("model_id"),
		}

		image, err := formFile(c, model.FileTypeImage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "missing image file"})
			return
		}
		mask, err := formFile(c, model.FileTypeMask)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "missing mask file"})
			return
		}
		files := model.InferenceFiles{Image: image, Mask: mask}

		newID, err := svc.Create(c.Request.Context(), c.Param("user_id"), form, files, tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": newID, "message": "inference registered!"})
	}
}

func GetInferenceResult(svc *services.ResultService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inference, result, err := svc.GetByInferenceID(c.Request.Context(), c.Param("inference_id"), c.Param("user_id"), tokenFrom(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"inference": inference, "result": result})
	}
}

func formFile(c *gin.Context, field string) (model.InferenceFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return model.InferenceFile{}, err
	}
	data, err := readAll(header)
	if err != nil {
		return model.InferenceFile{}, err
	}
	return model.InferenceFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
