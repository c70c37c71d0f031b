package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"staffhub.app/api-server/internal/http/handler"
)

// New assembles the engine: tracing middleware, health check, static
// photo serving and the /api groups.
func New(uploadDir string, dh *handler.DepartmentHandler, eh *handler.EmployeeHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("api-server"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	api := r.Group("/api")
	DepartmentRouter(api.Group("/departments"), dh)
	EmployeeRouter(api.Group("/employees"), eh)

	return r
}
