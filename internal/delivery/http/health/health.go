package http_health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/common"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Controller struct {
	storage Pinger
	mode    string
	logger  *slog.Logger
}

func New(storage Pinger, mode string) *Controller {
	return &Controller{
		storage: storage,
		mode:    mode,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthz", c.healthz)
}

func (c *Controller) healthz(ctx *gin.Context) {
	if err := c.storage.PingContext(ctx.Request.Context()); err != nil {
		c.logger.Error("storage ping failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
			Error: "storage unavailable",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "available",
		"mode":   c.mode,
	})
}
