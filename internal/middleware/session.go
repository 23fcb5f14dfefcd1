package middleware

import (
	"festiloc/internal/common"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

// SessionHeader carries the storefront session identifier. The cart and
// comparison set are keyed by it.
const SessionHeader = "X-Session-ID"

const sessionIDLength = 32

// SessionMiddleware resolves the session identifier from the request
// header, minting a fresh one for first-time visitors. The identifier is
// echoed back so the client can persist it.
type SessionMiddleware struct{}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

func (sm *SessionMiddleware) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionHeader)
			if sessionID == "" || len(sessionID) > 128 {
				sessionID = random.String(sessionIDLength)
			}

			c.Response().Header().Set(SessionHeader, sessionID)

			ctx := common.WithSessionID(c.Request().Context(), sessionID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
