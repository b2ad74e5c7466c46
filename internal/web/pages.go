package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/screens"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	jobPostingTemplate  = "job_posting.tmpl"
	resumeMatchTemplate = "resume_match.tmpl"
	interviewTemplate   = "interview.tmpl"

	uploadField = "file"
	// multipart framing and the text fields sent along with the file
	uploadOverhead = 1 << 16
)

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"scoreTone":          screens.ScoreTone,
		"recommendationTone": screens.RecommendationTone,
		"questionTone":       screens.QuestionTone,
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) jobPostingPage(c *gin.Context) {
	s.renderJobPosting(c, screens.DefaultJobPostingRequest(), screens.Idle[ai.JobPostingResult]())
}

func (s *Server) submitJobPostingPage(c *gin.Context) {
	req := screens.DefaultJobPostingRequest()
	s.bindForm(c, &req)
	s.renderJobPosting(c, req, s.features.JobPosting.Submit(c.Request.Context(), req))
}

func (s *Server) renderJobPosting(c *gin.Context, form ai.JobPostingRequest, out screens.Outcome[ai.JobPostingResult]) {
	c.HTML(http.StatusOK, jobPostingTemplate, jobPostingView{
		pageData: newPageData(screens.ViewJobGenerator),
		Form:     form,
		Tones:    ai.Tones(),
		Outcome:  out,
		Export:   screens.ExportJobPosting(out.Value()),
	})
}

func (s *Server) resumeMatchPage(c *gin.Context) {
	s.renderResumeMatch(c, resumeMatchView{Outcome: screens.Idle[ai.ResumeMatchResult]()})
}

func (s *Server) submitResumeMatchPage(c *gin.Context) {
	var req ai.ResumeMatchRequest
	s.bindForm(c, &req)
	s.renderResumeMatch(c, resumeMatchView{
		Form:    req,
		Outcome: s.features.ResumeMatch.Submit(c.Request.Context(), req),
	})
}

// uploadResumePage replaces the résumé field with the uploaded file and
// re-renders the form without analysing it.
func (s *Server) uploadResumePage(c *gin.Context) {
	view := resumeMatchView{Outcome: screens.Idle[ai.ResumeMatchResult]()}

	name, text, err := s.uploadedResume(c)

	// A body over the limit is never parsed, so the typed fields are lost with it.
	var req ai.ResumeMatchRequest
	if c.Request.MultipartForm != nil {
		s.bindForm(c, &req)
	}

	if err != nil {
		view.UploadError = screens.UploadMessage(err, s.config.MaxUploadBytes)
	} else {
		req.ResumeText = text
		view.UploadName = name
	}
	view.Form = req

	s.renderResumeMatch(c, view)
}

func (s *Server) renderResumeMatch(c *gin.Context, view resumeMatchView) {
	view.pageData = newPageData(screens.ViewResumeAnalyzer)
	c.HTML(http.StatusOK, resumeMatchTemplate, view)
}

func (s *Server) interviewPage(c *gin.Context) {
	s.renderInterview(c, screens.DefaultInterviewRequest(), screens.Idle[ai.InterviewScriptResult]())
}

func (s *Server) submitInterviewPage(c *gin.Context) {
	req := screens.DefaultInterviewRequest()
	s.bindForm(c, &req)
	s.renderInterview(c, req, s.features.Interview.Submit(c.Request.Context(), req))
}

func (s *Server) renderInterview(c *gin.Context, form ai.InterviewPrepRequest, out screens.Outcome[ai.InterviewScriptResult]) {
	c.HTML(http.StatusOK, interviewTemplate, interviewView{
		pageData:  newPageData(screens.ViewInterviewPrep),
		Form:      form,
		Levels:    ai.Levels(),
		Outcome:   out,
		Accordion: screens.NewAccordion(),
	})
}

// bindForm fills dst from the posted form. Unparseable forms leave dst as is
// and are caught by feature validation.
func (s *Server) bindForm(c *gin.Context, dst any) {
	if err := c.ShouldBind(dst); err != nil {
		requestLogger(c, s.logger).Debug("ignoring unparseable form", zap.Error(err))
	}
}

// uploadedResume parses the multipart body under the upload limit and reads
// the résumé file from it.
func (s *Server) uploadedResume(c *gin.Context) (string, string, error) {
	limit := s.config.MaxUploadBytes + uploadOverhead
	if c.Request.ContentLength > limit {
		return "", "", fmt.Errorf("%w: body of %d bytes", screens.ErrFileTooLarge, c.Request.ContentLength)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	if err := c.Request.ParseMultipartForm(s.config.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", "", fmt.Errorf("%w: %v", screens.ErrFileTooLarge, err)
		}
		return "", "", fmt.Errorf("%w: %v", screens.ErrUnsupportedFile, err)
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", screens.ErrUnsupportedFile, err)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	text, err := screens.ReadResumeFile(fh.Filename, fh.Header.Get("Content-Type"), f, s.config.MaxUploadBytes)
	if err != nil {
		requestLogger(c, s.logger).Info("resume upload rejected",
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
			zap.Error(err),
		)
		return "", "", err
	}

	return fh.Filename, text, nil
}
