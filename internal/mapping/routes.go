package mapping

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, mappingService MappingServiceAPI, logService LogServicePort) {
	mappingController := &MappingController{Service: mappingService, LogService: logService}

	mappingGroup := r.Group("/api/mappings")
	{
		mappingGroup.GET("", mappingController.ListMappings)
		mappingGroup.POST("", mappingController.CreateMapping)
		mappingGroup.GET("/enriched", mappingController.GetEnrichedMappings)
		mappingGroup.GET("/:id", mappingController.GetMapping)
		mappingGroup.GET("/:id/enriched", mappingController.GetEnrichedMapping)
		mappingGroup.PUT("/:id", mappingController.UpdateMapping)
		mappingGroup.DELETE("/:id", mappingController.DeleteMapping)
	}
}
