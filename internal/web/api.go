package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/screens"
)

const invalidBodyMessage = "Corpo da requisição inválido."

func (s *Server) createJobPosting(c *gin.Context) {
	var req ai.JobPostingRequest
	if !s.bindJSON(c, &req) {
		return
	}
	respond(c, s.features.JobPosting.Submit(c.Request.Context(), req))
}

func (s *Server) exportJobPosting(c *gin.Context) {
	var result ai.JobPostingResult
	if !s.bindJSON(c, &result) {
		return
	}
	c.String(http.StatusOK, screens.ExportJobPosting(&result))
}

func (s *Server) createResumeMatch(c *gin.Context) {
	var req ai.ResumeMatchRequest
	if !s.bindJSON(c, &req) {
		return
	}
	respond(c, s.features.ResumeMatch.Submit(c.Request.Context(), req))
}

func (s *Server) createInterviewScript(c *gin.Context) {
	req := screens.DefaultInterviewRequest()
	if !s.bindJSON(c, &req) {
		return
	}
	respond(c, s.features.Interview.Submit(c.Request.Context(), req))
}

func (s *Server) readResumeFile(c *gin.Context) {
	_, text, err := s.uploadedResume(c)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, screens.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": screens.UploadMessage(err, s.config.MaxUploadBytes)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumeText": text})
}

func (s *Server) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		requestLogger(c, s.logger).Debug("rejecting request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidBodyMessage})
		return false
	}
	return true
}

func respond[T any](c *gin.Context, out screens.Outcome[T]) {
	if result, ok := out.Result(); ok {
		c.JSON(http.StatusOK, result)
		return
	}
	if out.Invalid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": out.Message()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": out.Message()})
}
