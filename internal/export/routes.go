package export

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, exportService ExportServiceAPI, logService LogServicePort) {
	exportController := &ExportController{ExportService: exportService, LogService: logService}

	r.GET("/api/mappings/export", exportController.ExportMappings)

	snapshotGroup := r.Group("/api/snapshots")
	{
		snapshotGroup.GET("", exportController.ListSnapshots)
		snapshotGroup.POST("", exportController.PublishSnapshot)
	}
}
