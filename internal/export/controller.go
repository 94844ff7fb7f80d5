package export

import (
	"errors"
	"fmt"
	"net/http"

	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExportController struct {
	ExportService ExportServiceAPI
	LogService    LogServicePort
}

// GET /api/mappings/export?format=csv|xlsx|json
func (ec *ExportController) ExportMappings(c *gin.Context) {
	contentType, filename, data, err := ec.ExportService.Export(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}

// POST /api/snapshots?format=
func (ec *ExportController) PublishSnapshot(c *gin.Context) {
	snap, err := ec.ExportService.Publish(c.Request.Context(), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	if ec.LogService != nil {
		entry := logs.AuditLog{
			Level:   logs.LevelInfo,
			Service: "export",
			Action:  "PUBLISH_SNAPSHOT",
			Message: fmt.Sprintf("Snapshot published: %s", snap.Name),
		}
		if rid := middlewares.RequestID(c); rid != "" {
			entry.RequestID = &rid
		}
		if err := ec.LogService.Log(entry, snap); err != nil {
			log.Ctx(c.Request.Context()).Warn().Err(err).Msg("failed to insert audit log")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Snapshot published successfully",
		"snapshot": snap,
	})
}

// GET /api/snapshots
func (ec *ExportController) ListSnapshots(c *gin.Context) {
	snaps, err := ec.ExportService.ListSnapshots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Snapshots fetched successfully",
		"snapshots": snaps,
	})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of csv, xlsx, json"})
	case errors.Is(err, ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
