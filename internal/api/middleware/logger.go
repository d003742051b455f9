// Package middleware provides gin middleware shared by the API routes.
package middleware

import (
	"net"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

// RequestLogger logs completed requests. "Broken pipe" errors from clients
// that went away mid-response are skipped; they are routine on stream routes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if clientDisconnected(c) {
			return
		}

		if query != "" {
			path = path + "?" + query
		}

		zlog.Info().Msgf("request: method=%s path=%s status=%d latency=%s client=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}

// clientDisconnected reports whether any request error was a network-level
// disconnect rather than an application failure.
func clientDisconnected(c *gin.Context) bool {
	for _, e := range c.Errors {
		ne, ok := e.Err.(*net.OpError)
		if !ok {
			continue
		}
		se, ok := ne.Err.(*os.SyscallError)
		if !ok {
			continue
		}
		msg := strings.ToLower(se.Error())
		if strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer") {
			return true
		}
	}
	return false
}
