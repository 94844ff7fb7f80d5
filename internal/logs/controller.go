package logs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sttm-catalog-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LogController struct {
	Service LogServiceAPI
}

// POST /api/logs/search
func (lc *LogController) SearchLogs(c *gin.Context) {
	var filter LogFilterInput
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter: " + err.Error()})
		return
	}
	lc.respond(c, filter)
}

// GET /api/logs/mapping/:id returns the audit trail of one mapping.
func (lc *LogController) MappingHistory(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mapping id must be a positive integer"})
		return
	}

	filter := LogFilterInput{MappingID: &id}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		filter.Limit = limit
	}
	lc.respond(c, filter)
}

func (lc *LogController) respond(c *gin.Context, filter LogFilterInput) {
	entries, aggs, total, err := lc.Service.GetLogs(filter)
	switch {
	case errors.Is(err, util.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("audit log query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Audit logs fetched successfully",
		"data":       entries,
		"total":      total,
		"aggregates": aggs,
	})
}
