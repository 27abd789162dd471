// Package server exposes the query pipeline over HTTP for external chat
// UIs. The surface is deliberately small: one query endpoint, a symbol
// search endpoint, a chart export and a health probe.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivolee/stockdash/internal/agents"
	"github.com/ivolee/stockdash/internal/dataflows"
	"github.com/ivolee/stockdash/internal/display"
	"github.com/ivolee/stockdash/internal/search"
)

// PipelineProvider yields the current pipeline components per request,
// so config-driven rebuilds take effect without restarting the listener.
type PipelineProvider interface {
	Orchestrator() *agents.Orchestrator
	Fetcher() agents.Fetcher
}

// Server wraps the gin engine and the pipeline it serves.
type Server struct {
	engine    *gin.Engine
	pipelines PipelineProvider
	search    *search.Engine
	port      int
}

type queryRequest struct {
	Query string `json:"query" binding:"required"`
}

// New builds the HTTP surface. searchEngine may be nil, in which case the
// search endpoint reports the feature as unavailable.
func New(pipelines PipelineProvider, searchEngine *search.Engine, port int) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()

	s := &Server{
		engine:    engine,
		pipelines: pipelines,
		search:    searchEngine,
		port:      port,
	}

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api")
	{
		api.POST("/query", s.handleQuery)
		api.GET("/search", s.handleSearch)
		api.GET("/chart/:symbol", s.handleChart)
	}

	return s
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Server] listening on %s", addr)
	return s.engine.Run(addr)
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleQuery runs one natural-language query through the pipeline. The
// pipeline itself never fails the request; degraded outcomes come back as
// a summary with zero records.
func (s *Server) handleQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must contain a non-empty query"})
		return
	}

	result := s.pipelines.Orchestrator().Run(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSearch(c *gin.Context) {
	if s.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "symbol search is not enabled"})
		return
	}

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	results, err := s.search.Search(q, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// handleChart fetches a symbol's metrics and returns its valuation radar
// as a PNG.
func (s *Server) handleChart(c *gin.Context) {
	symbol := c.Param("symbol")
	if err := dataflows.ValidateSymbol(symbol); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.pipelines.Fetcher().Fetch(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no data for %s", symbol)})
		return
	}

	png, err := display.RenderRadarChart(record)
	if err != nil {
		log.Printf("[Server] chart render for %s failed: %v", symbol, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chart render failed"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
