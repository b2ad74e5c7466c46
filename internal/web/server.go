// Package web serves the HR assistant screens as HTML pages and a JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/screens"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 10 * time.Second
)

type Config struct {
	Addr           string
	CORSOrigins    []string
	MaxUploadBytes int64
}

type Server struct {
	engine   *gin.Engine
	features *screens.Features
	metrics  *Metrics
	logger   *zap.Logger
	config   Config
}

func NewServer(features *screens.Features, metrics *Metrics, config Config, log *zap.Logger) (*Server, error) {
	if features == nil {
		return nil, errors.New("features are required")
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(config.Addr) == "" {
		config.Addr = defaultAddr
	}
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = screens.DefaultMaxUploadBytes
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		features: features,
		metrics:  metrics,
		logger:   log,
		config:   config,
	}

	var corsCfg *cors.Config
	if len(config.CORSOrigins) > 0 {
		cfg := s.corsConfig()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("cors origins: %w", err)
		}
		corsCfg = &cfg
	}

	s.engine = s.routes(tmpl, corsCfg)

	return s, nil
}

func (s *Server) routes(tmpl *template.Template, corsCfg *cors.Config) *gin.Engine {
	engine := gin.New()
	engine.MaxMultipartMemory = s.config.MaxUploadBytes
	engine.SetHTMLTemplate(tmpl)

	engine.Use(
		gin.Recovery(),
		requestID(),
		accessLog(s.logger),
		s.metrics.Build(),
	)
	if corsCfg != nil {
		engine.Use(cors.New(*corsCfg))
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, screens.DefaultView.Path())
	})
	engine.GET(screens.ViewJobGenerator.Path(), s.jobPostingPage)
	engine.POST(screens.ViewJobGenerator.Path(), s.submitJobPostingPage)
	engine.GET(screens.ViewResumeAnalyzer.Path(), s.resumeMatchPage)
	engine.POST(screens.ViewResumeAnalyzer.Path(), s.submitResumeMatchPage)
	engine.POST(screens.ViewResumeAnalyzer.Path()+"/arquivo", s.uploadResumePage)
	engine.GET(screens.ViewInterviewPrep.Path(), s.interviewPage)
	engine.POST(screens.ViewInterviewPrep.Path(), s.submitInterviewPage)

	api := engine.Group("/api/v1")
	{
		api.POST("/job-postings", s.createJobPosting)
		api.POST("/job-postings/export", s.exportJobPosting)
		api.POST("/resume-matches", s.createResumeMatch)
		api.POST("/resume-files", s.readResumeFile)
		api.POST("/interview-scripts", s.createInterviewScript)
	}

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Redirect(http.StatusFound, screens.DefaultView.Path())
	})

	return engine
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", headerRequestID},
		ExposeHeaders: []string{headerRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range s.config.CORSOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = s.config.CORSOrigins
	return cfg
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.config.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
