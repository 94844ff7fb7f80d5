package assist

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, assistService AssistServiceAPI, logService LogServicePort) {
	assistController := &AssistController{AssistService: assistService, LogService: logService}

	r.POST("/api/mappings/:id/suggest-description", assistController.SuggestDescription)
}
