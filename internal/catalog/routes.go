package catalog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, catalogService CatalogServiceAPI) {
	catalogController := &CatalogController{Service: catalogService}

	api := r.Group("/api")
	{
		api.GET("/tables/:namespace", catalogController.GetTables)
		api.GET("/columns/:namespace", catalogController.GetColumns)
		api.GET("/releases", catalogController.GetReleases)
	}
}
