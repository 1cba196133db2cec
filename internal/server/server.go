package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/planwell/retirement-compare/internal/calculation"
	"github.com/planwell/retirement-compare/internal/domain"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr      string
	StaticDir string
}

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// Server exposes the comparison engine over HTTP.
type Server struct {
	cfg    Config
	engine *calculation.ComparisonEngine
	router *gin.Engine
}

// New builds a server around an engine. A nil engine gets the compiled-in
// rule tables.
func New(cfg Config, engine *calculation.ComparisonEngine) *Server {
	if engine == nil {
		engine = calculation.NewComparisonEngine()
	}
	s := &Server{cfg: cfg, engine: engine}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/compare", s.handleCompare)
	api.GET("/limits/:year", s.handleLimits)

	if s.cfg.StaticDir != "" {
		r.Static("/static", s.cfg.StaticDir)
		r.StaticFile("/", s.cfg.StaticDir+"/index.html")
	}

	return r
}

// Router returns the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "retirement-compare",
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	req := domain.DefaultComparisonRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.engine.Compare(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleLimits(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	limits, ok := s.engine.LimitsForYear(year)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "year " + c.Param("year") + " not supported"})
		return
	}

	c.JSON(http.StatusOK, limits)
}
