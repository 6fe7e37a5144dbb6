package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
)

// ChatConnected reports whether the chat transport is currently up.
type ChatConnected func() bool

// NewRouter builds the health router. This is the only HTTP surface the bot
// has; everything user-facing happens over chat.
func NewRouter(timeProvider coreport.TimeProvider, connected ChatConnected) *gin.Engine {
	start := timeProvider.Now()

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		state := "healthy"

		if !connected() {
			status = http.StatusServiceUnavailable
			state = "unhealthy"
		}

		c.JSON(status, gin.H{
			"status":    state,
			"uptime":    timeProvider.Since(start).String(),
			"connected": connected(),
			"timestamp": timeProvider.Now().Format(time.RFC3339),
		})
	})

	return router
}
