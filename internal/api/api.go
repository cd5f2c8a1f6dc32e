// Package api exposes commonmark.Convert over HTTP: POST /v1/render,
// GET /healthz, GET /metrics, and a GET /v1/ws live-reload feed, following
// jinterlante1206-AleutianLocal's gin + validator + uuid + gorilla/websocket
// + prometheus combination (services/trace/handlers.go,
// services/orchestrator/handlers/websocket.go).
package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/inkwell-md/commonmark"
	"github.com/inkwell-md/commonmark/internal/cache"
)

var validate = validator.New()

var (
	renderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_render_total",
		Help: "Total render requests by status.",
	}, []string{"status"})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwell_render_duration_seconds",
		Help:    "Render latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// RenderRequest is the POST /v1/render body.
type RenderRequest struct {
	Source          string `json:"source" validate:"required"`
	MaxNestingDepth int    `json:"max_nesting_depth,omitempty" validate:"omitempty,min=1,max=1000"`
	UnsafeHTML      bool   `json:"unsafe_html,omitempty"`
}

// RenderResponse is the POST /v1/render response body.
type RenderResponse struct {
	HTML      string `json:"html"`
	RequestID string `json:"request_id"`
}

// ErrorResponse is returned for any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Server wires gin handlers around a Cache and a rate limiter.
type Server struct {
	Logger  *slog.Logger
	Cache   *cache.Cache
	Limiter *perClientLimiter

	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
}

// New builds a Server. rps/burst configure the per-client rate limiter; pass
// 0 for rps to disable limiting.
func New(logger *slog.Logger, c *cache.Cache, rps float64, burst int) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Logger:  logger,
		Cache:   c,
		Limiter: newPerClientLimiter(rps, burst),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Routes registers every handler onto engine.
func (s *Server) Routes(engine *gin.Engine) {
	engine.Use(s.requestID)
	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/v1/ws", s.handleWebsocket)

	render := engine.Group("/v1/render")
	if s.Limiter != nil {
		render.Use(s.rateLimit)
	}
	render.POST("", s.handleRender)
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	c.Set("request_id", id)
	c.Header("X-Request-Id", id)
	c.Next()
}

func (s *Server) rateLimit(c *gin.Context) {
	if !s.Limiter.allow(c.ClientIP()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "rate limit exceeded",
			Code:  "RATE_LIMITED",
		})
		return
	}
	c.Next()
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRender(c *gin.Context) {
	requestID, _ := c.Get("request_id")
	logger := s.Logger.With("request_id", requestID)

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_BODY"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
		return
	}

	opts := commonmark.Options{MaxNestingDepth: req.MaxNestingDepth, UnsafeHTML: req.UnsafeHTML}

	start := time.Now()
	html := s.render(req.Source, opts)
	elapsed := time.Since(start)

	renderTotal.WithLabelValues("ok").Inc()
	renderDuration.Observe(elapsed.Seconds())
	logger.Debug("rendered", "bytes", len(req.Source), "elapsed_ms", elapsed.Milliseconds())

	c.JSON(http.StatusOK, RenderResponse{HTML: html, RequestID: requestID.(string)})
	s.broadcast(html)
}

func (s *Server) render(source string, opts commonmark.Options) string {
	if s.Cache == nil {
		return commonmark.Convert(source, opts)
	}
	key := cache.Key(source, fingerprint(opts))
	if html, ok, err := s.Cache.Get(key); err == nil && ok {
		return html
	}
	html := commonmark.Convert(source, opts)
	_ = s.Cache.Set(key, html)
	return html
}

func fingerprint(opts commonmark.Options) string {
	if opts.UnsafeHTML {
		return "unsafe"
	}
	return "safe"
}

func (s *Server) handleWebsocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast pushes freshly rendered HTML to every connected live-reload client.
func (s *Server) broadcast(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(gin.H{"html": html}); err != nil {
			s.Logger.Debug("dropping websocket client", "error", err)
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

type perClientLimiter struct {
	rps   rate.Limit
	burst int
	mu    sync.Mutex
	byIP  map[string]*rate.Limiter
}

func newPerClientLimiter(rps float64, burst int) *perClientLimiter {
	if rps <= 0 {
		return nil
	}
	return &perClientLimiter{
		rps:   rate.Limit(rps),
		burst: burst,
		byIP:  make(map[string]*rate.Limiter),
	}
}

func (l *perClientLimiter) allow(ip string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	lim, ok := l.byIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.byIP[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
