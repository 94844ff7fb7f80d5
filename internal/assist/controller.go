package assist

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/mapping"
	"sttm-catalog-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssistController struct {
	AssistService AssistServiceAPI
	LogService    LogServicePort
}

// POST /api/mappings/:id/suggest-description?apply=true
func (ac *AssistController) SuggestDescription(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid mapping id is required"})
		return
	}

	apply, _ := strconv.ParseBool(c.DefaultQuery("apply", "false"))

	s, err := ac.AssistService.SuggestDescription(c.Request.Context(), id, apply)
	if err != nil {
		switch {
		case errors.Is(err, ErrAssistDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, mapping.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": mapping.NotFoundMessage(id)})
		default:
			log.Ctx(c.Request.Context()).Error().Err(err).Int("mapping_id", id).Msg("description suggestion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if s.Applied {
		ac.audit(c, s)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Description suggested successfully",
		"suggestion": s,
	})
}

func (ac *AssistController) audit(c *gin.Context, s *Suggestion) {
	if ac.LogService == nil {
		return
	}

	id := s.MappingID
	entry := logs.AuditLog{
		Level:     logs.LevelInfo,
		Service:   "assist",
		MappingID: &id,
		Action:    "UPDATE_MAPPING",
		Message:   fmt.Sprintf("Mapping description suggested and applied: %d", id),
	}
	if rid := middlewares.RequestID(c); rid != "" {
		entry.RequestID = &rid
	}

	payload := gin.H{"fields": []string{"description"}, "model": s.Model, "description": s.Description}
	if err := ac.LogService.Log(entry, payload); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Msg("failed to insert audit log")
	}
}
