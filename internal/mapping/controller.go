package mapping

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const auditService = "mapping"

type MappingController struct {
	Service    MappingServiceAPI
	LogService LogServicePort
}

// GET /api/mappings?release_id=&status=
func (mc *MappingController) ListMappings(c *gin.Context) {
	var filter ListFilter

	if raw := strings.TrimSpace(c.Query("release_id")); raw != "" {
		rid, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "release_id must be an integer"})
			return
		}
		filter.ReleaseID = &rid
	}
	if status, ok := c.GetQuery("status"); ok {
		filter.Status = &status
	}

	mappings, err := mc.Service.ListMappings(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Mappings fetched successfully",
		"mappings": mappings,
	})
}

func (mc *MappingController) GetEnrichedMappings(c *gin.Context) {
	mappings, err := mc.Service.EnrichedMappings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Mappings fetched successfully",
		"mappings": mappings,
	})
}

func (mc *MappingController) GetMapping(c *gin.Context) {
	id, ok := parseMappingID(c)
	if !ok {
		return
	}

	m, err := mc.Service.GetMapping(id)
	if err != nil {
		respondError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mapping fetched successfully",
		"mapping": m,
	})
}

func (mc *MappingController) GetEnrichedMapping(c *gin.Context) {
	id, ok := parseMappingID(c)
	if !ok {
		return
	}

	m, err := mc.Service.GetEnrichedMapping(id)
	if err != nil {
		respondError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mapping fetched successfully",
		"mapping": m,
	})
}

func (mc *MappingController) CreateMapping(c *gin.Context) {
	var input MappingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.Service.CreateMapping(input)
	if err != nil {
		respondError(c, 0, err)
		return
	}

	mc.audit(c, logs.LevelInfo, "CREATE_MAPPING", m.ID, fmt.Sprintf("Mapping created: %d", m.ID), m)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Mapping created successfully",
		"mapping": m,
	})
}

func (mc *MappingController) UpdateMapping(c *gin.Context) {
	id, ok := parseMappingID(c)
	if !ok {
		return
	}

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.Service.UpdateMapping(id, patch)
	if err != nil {
		respondError(c, id, err)
		return
	}

	mc.audit(c, logs.LevelInfo, "UPDATE_MAPPING", id, fmt.Sprintf("Mapping updated: %d", id),
		gin.H{"fields": patch.Fields(), "mapping": m})

	c.JSON(http.StatusOK, gin.H{
		"message": "Mapping updated successfully",
		"mapping": m,
	})
}

func (mc *MappingController) DeleteMapping(c *gin.Context) {
	id, ok := parseMappingID(c)
	if !ok {
		return
	}

	if err := mc.Service.DeleteMapping(id); err != nil {
		respondError(c, id, err)
		return
	}

	mc.audit(c, logs.LevelWarn, "DELETE_MAPPING", id, fmt.Sprintf("Mapping deleted: %d", id), nil)

	c.Status(http.StatusNoContent)
}

// audit never fails the request; a failed insert is only logged.
func (mc *MappingController) audit(c *gin.Context, level, action string, id int, msg string, payload interface{}) {
	if mc.LogService == nil {
		return
	}

	entry := logs.AuditLog{
		Level:     level,
		Service:   auditService,
		MappingID: &id,
		Action:    action,
		Message:   msg,
	}
	if rid := middlewares.RequestID(c); rid != "" {
		entry.RequestID = &rid
	}

	if err := mc.LogService.Log(entry, payload); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("action", action).Msg("failed to insert audit log")
	}
}

func parseMappingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid mapping id is required"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, id int, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": NotFoundMessage(id)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
