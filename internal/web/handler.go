package web

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"
	"eyetimer/internal/logger"
	"eyetimer/internal/ui/timerview"

	"github.com/gin-gonic/gin"
)

// refreshSeconds is the page auto-refresh interval.
const refreshSeconds = 1

// Source is the read-only timer surface the page renders.
type Source interface {
	Snapshot() phasetimer.Snapshot
	Settings() model.Settings
}

// Handler wires the HTTP layer to the timer.
type Handler struct {
	source Source
	clock  phasetimer.Clock
	icon   []byte
	page   *template.Template
}

// NewHandler constructs the HTTP handler. icon is served as /favicon.png.
func NewHandler(source Source, clock phasetimer.Clock, icon []byte) *Handler {
	if clock == nil {
		clock = phasetimer.SystemClock{}
	}
	return &Handler{
		source: source,
		clock:  clock,
		icon:   icon,
		page:   template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// InitRoutes builds the gin router.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", h.index)
	router.GET("/favicon.png", h.favicon)
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return router
}

type pageData struct {
	Title     string
	Heading   string
	Badge     string
	Break     bool
	Countdown string
	Percent   string
	Next      string
	State     string
	Footer    string
	Refresh   int
}

func (h *Handler) index(c *gin.Context) {
	snapshot := h.source.Snapshot()
	settings := h.source.Settings()
	remaining := snapshot.RemainingAt(h.clock.Now())

	data := pageData{
		Title:     timerview.Title(settings),
		Heading:   timerview.Heading(settings),
		Badge:     timerview.Badge(snapshot.Phase),
		Break:     snapshot.Phase == phasetimer.PhaseBreak,
		Countdown: timerview.FormatCountdown(phasetimer.CeilSeconds(remaining)),
		Percent:   formatPercent(timerview.ProgressPercent(remaining, snapshot.Total)),
		Next:      timerview.NextText(snapshot.Phase, settings),
		State:     timerview.ToggleLabel(snapshot),
		Footer:    timerview.Footer(settings),
		Refresh:   refreshSeconds,
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.Error("render page", "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) favicon(c *gin.Context) {
	if len(h.icon) == 0 {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", h.icon)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
