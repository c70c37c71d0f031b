package router

import (
	"github.com/gin-gonic/gin"

	"staffhub.app/api-server/internal/http/handler"
)

func DepartmentRouter(rg *gin.RouterGroup, h *handler.DepartmentHandler) {
	rg.GET("", h.List)
	rg.GET("/all", h.ListAll)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
