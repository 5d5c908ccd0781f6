package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"cotizador/internal"
	"cotizador/internal/catalog"
	"cotizador/internal/config"
	"cotizador/internal/quotes"
)

// Server exposes the catalog search surface and quote submission over JSON.
// The catalog is loaded once and swapped whole on reload; in-flight requests
// keep reading the snapshot they started with.
type Server struct {
	router *gin.Engine
	cfg    config.Config
	loader *catalog.Loader
	quotes *quotes.Service

	mu         sync.RWMutex
	catalog    internal.Catalog
	lastReport catalog.IngestReport
}

func New(cfg config.Config, loader *catalog.Loader, quoteService *quotes.Service) *Server {
	s := &Server{
		router: gin.Default(),
		cfg:    cfg,
		loader: loader,
		quotes: quoteService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api")
	api.GET("/search", s.handleSearch)
	api.POST("/quotes", s.handleCreateQuote)
	api.POST("/reload", s.handleReload)
}

// Handler exposes the underlying router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	if err := s.reload(); err != nil && !errors.Is(err, catalog.ErrNoData) {
		return err
	}
	return s.router.Run(s.cfg.HTTPAddr)
}

func (s *Server) reload() error {
	cat, report, err := s.loader.Load()
	if err != nil && !errors.Is(err, catalog.ErrNoData) {
		return err
	}
	s.mu.Lock()
	s.catalog = cat
	s.lastReport = report
	s.mu.Unlock()

	for _, w := range report.Warnings {
		log.Printf("ingest warning: %s", w)
	}
	for _, e := range report.Errors {
		log.Printf("ingest error: %s", e)
	}
	log.Printf("catalog loaded files=%d rows=%d elapsed=%s", report.Files, report.Rows, report.Elapsed)
	return err
}

func (s *Server) snapshot() (internal.Catalog, catalog.IngestReport) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.lastReport
}

func (s *Server) handleSearch(c *gin.Context) {
	cat, _ := s.snapshot()
	if len(cat) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "no_data", "count": 0, "rows": internal.Catalog{}})
		return
	}

	rows := catalog.Search(cat, c.Query("q"))
	total := len(rows)
	if limit := s.cfg.SearchLimit; limit > 0 && total > limit {
		rows = rows[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "rows": rows})
}

func (s *Server) handleCreateQuote(c *gin.Context) {
	var in internal.QuoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.quotes.Save(in)
	if err != nil {
		if errors.Is(err, quotes.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      row.ID,
		"total":   row.Total,
		"mensaje": fmt.Sprintf("Cotización guardada. Total: S/ %.2f", row.Total),
	})
}

func (s *Server) handleReload(c *gin.Context) {
	err := s.reload()
	_, report := s.snapshot()
	out := gin.H{
		"files":    report.Files,
		"rows":     report.Rows,
		"warnings": report.Warnings,
		"errors":   report.Errors,
	}
	if err != nil {
		if errors.Is(err, catalog.ErrNoData) {
			out["status"] = "no_data"
			c.JSON(http.StatusOK, out)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out["status"] = "ok"
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleHealth(c *gin.Context) {
	cat, _ := s.snapshot()
	status := "ok"
	if len(cat) == 0 {
		status = "no_data"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "rows": len(cat)})
}
