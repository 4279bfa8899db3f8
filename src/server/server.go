package server

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var webFS embed.FS

// -----------------------------------------------------------------------------
// DashboardServer
// -----------------------------------------------------------------------------

type DashboardServer struct {
	Config *config.Config
	Logger *logger.Logger
	engine *gin.Engine

	// Pipeline collaborators
	Quote    interfaces.IQuoteSource
	History  interfaces.IHistorySource
	Analyzer *analysis.AnalysisFacade
	DB       interfaces.IDatabase

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MDashboardState
	register   chan *Client
	unregister chan *Client

	// Latest completed analysis, shared with newly connected tabs
	latestState *models.MDashboardState
	stateMutex  sync.RWMutex

	startedAt time.Time
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewDashboardServer(
	cfg *config.Config,
	log *logger.Logger,
	quote interfaces.IQuoteSource,
	history interfaces.IHistorySource,
	analyzer *analysis.AnalysisFacade,
	db interfaces.IDatabase,
) *DashboardServer {
	if !strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &DashboardServer{
		Config:   cfg,
		Logger:   log,
		engine:   gin.Default(),
		Quote:    quote,
		History:  history,
		Analyzer: analyzer,
		DB:       db,
		clients:  make(map[*Client]struct{}),
		// Buffered so a burst of completed runs never blocks the pipeline
		broadcast:  make(chan *models.MDashboardState, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		latestState: &models.MDashboardState{
			Type: "INITIAL",
		},
		startedAt: time.Now(),
	}

	s.engine.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/index.html")))

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *DashboardServer) setupRoutes() {
	// Dashboard page
	s.engine.GET("/", s.getIndex)

	// REST API endpoints
	s.engine.GET("/api/analyze", s.analyze)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/recent", s.getRecent)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *DashboardServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting dashboard server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

// Stop shuts the hub loop down. Only the broadcast channel is closed; the
// register/unregister channels must stay valid for connections racing the
// shutdown.
func (s *DashboardServer) Stop() error {
	close(s.broadcast)
	return nil
}

// -----------------------------------------------------------------------------

// Engine exposes the router for tests.
func (s *DashboardServer) Engine() *gin.Engine {
	return s.engine
}
