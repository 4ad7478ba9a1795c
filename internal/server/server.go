// Package server exposes the astrology engines over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sametklc/mystic/config"
	"github.com/sametklc/mystic/internal/chart"
	"github.com/sametklc/mystic/internal/insight"
	"github.com/sametklc/mystic/internal/synastry"
	"github.com/sametklc/mystic/internal/transit"
	"github.com/sametklc/mystic/logger"
)

// Server hosts the Gin-powered JSON API.
type Server struct {
	cfg        config.ServerConfig
	log        *logger.Log
	assembler  *chart.Assembler
	transits   *transit.Engine
	insights   *insight.Service
	limiter    *rate.Limiter
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, assembler *chart.Assembler, transits *transit.Engine, insights *insight.Service) *Server {
	cfg.Address = normalizeAddress(cfg.Address)

	return &Server{
		cfg:       cfg,
		log:       logger.GetLogger(),
		assembler: assembler,
		transits:  transits,
		insights:  insights,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize),
	}
}

// Run starts the HTTP server and blocks until the provided context is
// cancelled or the underlying HTTP server exits with an error.
func (s *Server) Run(ctx context.Context) error {
	router, err := s.buildRouter()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         s.cfg.Address,
		Handler:      router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.log.WithComponent("server").WithFields(logger.Fields{
		"address": s.cfg.Address,
	}).Info("http server listening")

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err == nil {
			return nil
		}
		return err
	}
}

// Address reports the network address the server listens on.
func (s *Server) Address() string {
	return s.cfg.Address
}

func (s *Server) buildRouter() (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	router.Use(s.rateLimit)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.POST("/chart", s.handleChart)
	api.POST("/synastry", s.handleSynastry)
	api.POST("/transits", s.handleTransits)
	api.GET("/insight/daily", s.handleDailyInsight)

	return router, nil
}

func (s *Server) rateLimit(c *gin.Context) {
	if !s.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}
	c.Next()
}

func (s *Server) handleChart(c *gin.Context) {
	var in chart.BirthInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	natal, err := s.assembler.Build(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, natal)
}

type synastryRequest struct {
	Person1 chart.BirthInput `json:"person1" binding:"required"`
	Person2 chart.BirthInput `json:"person2" binding:"required"`
}

func (s *Server) handleSynastry(c *gin.Context) {
	var req synastryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c1, err := s.assembler.Build(req.Person1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person1: " + err.Error()})
		return
	}
	c2, err := s.assembler.Build(req.Person2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person2: " + err.Error()})
		return
	}

	report := synastry.Analyze(c1, c2)
	c.JSON(http.StatusOK, gin.H{
		"report_id": uuid.NewString(),
		"report":    report,
	})
}

type transitRequest struct {
	Birth chart.BirthInput `json:"birth" binding:"required"`
	Date  string           `json:"date"`
}

func (s *Server) handleTransits(c *gin.Context) {
	var req transitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	natal, err := s.assembler.Build(req.Birth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := targetDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.transits.Summarize(natal, day))
}

func (s *Server) handleDailyInsight(c *gin.Context) {
	day, err := targetDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.insights.Daily(day))
}

// targetDay parses an optional YYYY-MM-DD date, defaulting to today.
func targetDay(date string) (time.Time, error) {
	if date == "" {
		return time.Now().UTC(), nil
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return day, nil
}

func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)

	if addr == "" {
		return "0.0.0.0:8080"
	}

	if strings.Contains(addr, "://") {
		if parsed, err := url.Parse(addr); err == nil {
			if host := parsed.Host; host != "" {
				addr = host
			} else if parsed.Opaque != "" {
				addr = parsed.Opaque
			}
		}
	}

	if strings.HasPrefix(addr, ":") {
		if len(addr) > 1 && addr[1] >= '0' && addr[1] <= '9' {
			return "0.0.0.0" + addr
		}
	}

	host, port, err := net.SplitHostPort(addr)
	if err == nil {
		if host == "" || host == "*" {
			host = "0.0.0.0"
		}
		if port == "" {
			port = "8080"
		}
		return net.JoinHostPort(host, port)
	}

	if ip := net.ParseIP(addr); ip != nil {
		return net.JoinHostPort(addr, "8080")
	}

	if !strings.Contains(addr, ":") {
		return net.JoinHostPort(addr, "8080")
	}

	return addr
}
