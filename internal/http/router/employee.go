package router

import (
	"github.com/gin-gonic/gin"

	"staffhub.app/api-server/internal/http/handler"
)

func EmployeeRouter(rg *gin.RouterGroup, h *handler.EmployeeHandler) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
