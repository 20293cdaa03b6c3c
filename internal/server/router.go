// Package server wires the registries behind a gin REST API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"textforge/internal/catalog"
	"textforge/internal/registry"
	"textforge/internal/transform"
	"textforge/pkg/config"
	pkgerrors "textforge/pkg/errors"
)

// Server holds the read-only dependencies of the HTTP handlers.
type Server struct {
	cfg       *config.Config
	log       *zap.Logger
	tools     *registry.ToolRegistry
	functions *registry.FunctionRegistry
}

// New creates a Server over the given registries.
func New(cfg *config.Config, log *zap.Logger, tools *registry.ToolRegistry, functions *registry.FunctionRegistry) *Server {
	return &Server{cfg: cfg, log: log, tools: tools, functions: functions}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(s.log))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", s.handleCategories)
		api.GET("/tools", s.handleTools)
		api.GET("/tools/:category", s.handleCategoryTools)
		api.GET("/tools/:category/:tool", s.handleToolInfo)
		api.POST("/tools/:category/:tool/transform", s.handleTransform)
		api.GET("/slugs", s.handleSlugs)
		api.GET("/popular", s.handlePopular)
	}

	return router
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.tools.ListCategoriesWithCounts()})
}

func (s *Server) handleTools(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, gin.H{"tools": s.tools.SearchTools(q)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": s.tools.ListAllTools()})
}

func (s *Server) handleCategoryTools(c *gin.Context) {
	categorySlug := c.Param("category")
	if _, ok := catalog.GetCategoryBySlug(categorySlug); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": s.tools.GetToolsByCategorySlug(categorySlug)})
}

func (s *Server) handleToolInfo(c *gin.Context) {
	tool, ok := s.tools.GetTool(c.Param("category"), c.Param("tool"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}
	withCategory, ok := s.tools.GetToolWithCategory(tool.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tool":    withCategory,
		"related": s.tools.GetRelatedTools(tool.ID, registry.DefaultRelatedLimit),
	})
}

type transformRequest struct {
	Input   string            `json:"input"`
	Options transform.Options `json:"options"`
}

func (s *Server) handleTransform(c *gin.Context) {
	tool, ok := s.tools.GetTool(c.Param("category"), c.Param("tool"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return
	}

	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if size := len([]rune(req.Input)); size > s.cfg.MaxInputChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgerrors.NewInputTooLarge(size, s.cfg.MaxInputChars).Message})
		return
	}

	fn, ok := s.functions.Resolve(tool.TransformFn)
	if !ok {
		// Registry integrity defect: the catalog declares a function that was
		// never bound. Surfaced as an explicit unavailable state, not a 500.
		s.log.Error("declared transform function is not registered",
			zap.String("tool", tool.ID), zap.String("transformFn", tool.TransformFn))
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not available"})
		return
	}

	output, err := fn(req.Input, registry.ApplyOptionDefaults(tool, req.Options))
	if err != nil {
		if pkgerrors.IsErrorType(err, pkgerrors.ErrorTypeTransform) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		s.log.Error("transform failed", zap.String("tool", tool.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transform failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"output": output})
}

func (s *Server) handleSlugs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slugs": s.tools.GetAllToolSlugs()})
}

func (s *Server) handlePopular(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.tools.GetPopularTools()})
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
