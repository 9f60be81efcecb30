package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("skatelog %s | %s %s%s | %d | %s | %s\n",
			param.TimeStamp.Format(time.RFC3339),
			param.Method,
			param.Path,
			querySuffix(param.Request.URL.RawQuery),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
		)
	})
}

func querySuffix(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	return "?" + rawQuery
}
