package http_access_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/common"
)

const (
	ModeReadWrite = "RW"
	ModeReadOnly  = "RO"
)

const readOnlyNotice = "The catalog is read-only right now."

// ReadOnly turns every catalog write into a notice and a redirect back to
// the listing when mode is RO.
func ReadOnly(mode string, notices http_common.Notices) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		if err := notices.SetNotice(c.Request.Context(), http_common.SessionID(c), readOnlyNotice); err != nil {
			slog.Default().Error("failed to set notice", slog.String("error", err.Error()))
		}
		http_common.Redirect(c, "/movies")
		c.Abort()
	}
}
