// Package api exposes the trade store over HTTP.
package api

import (
	"errors"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trade-query-go/infrastructure/logger"
	"trade-query-go/infrastructure/monitor"
	"trade-query-go/trade"
)

// TradeFinder is the read side of trade.Store.
type TradeFinder interface {
	Get(id string) (trade.Trade, error)
	Find(q trade.Query) ([]trade.Trade, string, error)
}

type Server struct {
	R       *gin.Engine
	Trades  TradeFinder
	Logger  *logger.Logger
	Monitor *monitor.Monitor

	apiDoc object
}

type apiError struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// NewServer wires the router, store and middleware.
func NewServer(trades TradeFinder, log *logger.Logger, mon *monitor.Monitor) *Server {
	g := gin.New()
	// "/trades/" is an unknown path, not a redirect.
	g.RedirectTrailingSlash = false
	// Known paths with another method answer 405 instead of the catch-all.
	g.HandleMethodNotAllowed = true

	s := &Server{
		R:       g,
		Trades:  trades,
		Logger:  log,
		Monitor: mon,
		apiDoc:  openAPIDocument(),
	}

	g.Use(requestID(), s.observe(), gin.CustomRecovery(s.recovered))

	g.GET("/", s.root)
	g.GET("/trades", s.listTrades)
	g.GET("/trades/:trade_id", s.getTrade)
	g.GET(openAPIPath, s.openAPI)
	g.GET("/docs", s.docs)
	g.NoRoute(s.unknownPath)
	g.NoMethod(s.methodNotAllowed)

	return s
}

// Handler returns the engine as an http.Handler.
func (s *Server) Handler() http.Handler { return s.R }

// --- Helpers ---

func (s *Server) notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, apiError{Detail: err.Error()})
}

func (s *Server) invalidParam(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, apiError{Detail: err.Error()})
}

func (s *Server) methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, apiError{Detail: "Method Not Allowed"})
}

func (s *Server) internalError(c *gin.Context, where string, err error) {
	s.Logger.LogError(err, map[string]interface{}{
		"where":      where,
		"request_id": c.GetString(requestIDKey),
	})
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{Detail: "Internal Server Error"})
}

func (s *Server) recovered(c *gin.Context, recovered any) {
	s.Logger.Error("panic_recovered",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(requestIDKey)),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{Detail: "Internal Server Error"})
}

// --- Handlers ---

func (s *Server) root(c *gin.Context) {
	s.renderJSON(c, messageResponse{Message: "Welcome to my API!"})
}

func (s *Server) listTrades(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		s.invalidParam(c, err)
		return
	}

	rows, category, err := s.Trades.Find(q)
	if err != nil {
		var nf *trade.NotFoundError
		if errors.As(err, &nf) {
			s.Monitor.RecordNotFound(nf.Category)
			s.notFound(c, nf)
			return
		}
		s.internalError(c, "Find", err)
		return
	}

	s.Monitor.RecordTradesReturned(category, len(rows))
	s.renderJSON(c, rows)
}

func (s *Server) getTrade(c *gin.Context) {
	t, err := s.Trades.Get(c.Param("trade_id"))
	if err != nil {
		if trade.IsNotFound(err) {
			s.Monitor.RecordNotFound("trade")
			s.notFound(c, err)
			return
		}
		s.internalError(c, "Get", err)
		return
	}
	s.renderJSON(c, t)
}

// unknownPath is GET-only like every other route.
func (s *Server) unknownPath(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Header("Allow", http.MethodGet)
		s.methodNotAllowed(c)
		return
	}
	path := strings.TrimPrefix(c.Request.URL.Path, "/")
	s.renderJSON(c, messageResponse{Message: "The URL " + path + " is not valid go to /docs or /trades"})
}
