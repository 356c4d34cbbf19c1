package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	greetingMessage = "Hello World! CI/CD Pipeline Demo Application"
	healthyStatus   = "healthy"
	serviceName     = "demo-app"
)

// GreetingResponse is the body of GET /
type GreetingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// handleGreeting handles the root route
func (s *Server) handleGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, GreetingResponse{
		Message:   greetingMessage,
		Timestamp: s.clock.Timestamp(),
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    healthyStatus,
		Service:   serviceName,
		Uptime:    s.clock.Seconds(),
		Timestamp: s.clock.Timestamp(),
	})
}
