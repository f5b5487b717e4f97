package http_common

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionIDKey = "session_id"

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Notices stores the one-shot message shown on the next rendered page.
type Notices interface {
	SetNotice(ctx context.Context, sessionID string, notice string) error
	PopNotice(ctx context.Context, sessionID string) (string, error)
}

func SessionID(ctx *gin.Context) string {
	return ctx.GetString(SessionIDKey)
}

// Redirect answers GET with 302 and anything else with 303 so that
// browsers follow up with a GET.
func Redirect(ctx *gin.Context, location string) {
	status := http.StatusSeeOther
	if ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead {
		status = http.StatusFound
	}
	ctx.Redirect(status, location)
}
