package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinder/internal/feedback"
)

func feedbackListHandler(svc FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"feedback": svc.List()})
	}
}

func feedbackAddHandler(svc FeedbackService, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in feedback.AddInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid feedback payload: %v", err)})
			return
		}
		_, sess := sessions.Current()
		entry, err := svc.Add(sess, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"entry": entry})
	}
}

func feedbackEditHandler(svc FeedbackService, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in feedback.EditInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid feedback payload: %v", err)})
			return
		}
		_, sess := sessions.Current()
		if err := svc.Edit(sess, c.Param("id"), in); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": svc.List()})
	}
}

func feedbackDeleteHandler(svc FeedbackService, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, sess := sessions.Current()
		if err := svc.Delete(sess, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": svc.List()})
	}
}

func historyListHandler(svc HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"history": svc.Entries()})
	}
}

func historyAddHandler(svc HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Breed   string `json:"breed"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid history payload: %v", err)})
			return
		}
		entry, err := svc.Append(in.Breed, in.Message)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"entry": entry})
	}
}
