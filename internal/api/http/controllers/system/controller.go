package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger — проверка доступности зависимости для readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — системные маршруты: liveness, readiness, метрики.
type Controller struct {
	cache Pinger
	table Pinger
	log   *slog.Logger
}

// New создаёт системный контроллер.
func New(cache, table Pinger, log *slog.Logger) *Controller {
	return &Controller{cache: cache, table: table, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.cache.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "dep", "hash cache", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	if err := c.table.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "dep", "strategy table", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
