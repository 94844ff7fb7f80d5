package logs

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, service LogServiceAPI) {
	logController := &LogController{Service: service}

	logGroup := r.Group("/api/logs")
	{
		logGroup.POST("/search", logController.SearchLogs)
		logGroup.GET("/mapping/:id", logController.MappingHistory)
	}
}
