package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler redirects plain HTTP requests to HTTPS. Only wired when the
// deployment terminates TLS in-process; behind a reverse proxy it stays off.
func TlsHandler(host string) gin.HandlerFunc {
	// Built once up front; the middleware itself is allocation-free.
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host,
	})

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			// Never Fatal inside a middleware; log and drop the request.
			zap.L().Error("TLS redirection failed", zap.Error(err))
			c.Abort()
			return
		}

		c.Next()
	}
}
