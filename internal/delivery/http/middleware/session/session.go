package http_session_middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/common"
)

type Middleware struct {
	cookie string
	ttl    time.Duration
	logger *slog.Logger
}

func New(cookie string, ttl time.Duration) *Middleware {
	return &Middleware{
		cookie: cookie,
		ttl:    ttl,
		logger: slog.Default(),
	}
}

// Session makes sure every request carries a session id, issuing a fresh
// cookie when the client has none or sends garbage.
func (m *Middleware) Session() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := ctx.Cookie(m.cookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			m.logger.Debug("new session", slog.String("session_id", id))
		}

		// refresh expiry on every request
		ctx.SetCookie(m.cookie, id, int(m.ttl.Seconds()), "/", "", false, true)
		ctx.Set(http_common.SessionIDKey, id)
		ctx.Next()
	}
}
