package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatProxyRequest struct {
	Question    string `json:"question" binding:"required"`
	ForceOpenAI bool   `json:"force_openai"`
}

func chatHandler(svc AssistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatProxyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid chat payload: %v", err)})
			return
		}
		answer, err := svc.Chat(c.Request.Context(), req.Question, req.ForceOpenAI)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, answer)
	}
}

func predictHandler(svc AssistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		defer file.Close()

		prediction, err := svc.Predict(c.Request.Context(), header.Filename, file)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"breed":      prediction.Breed,
			"confidence": prediction.Confidence,
			"percent":    prediction.Percent(),
		})
	}
}
