package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service CatalogServiceAPI
}

func (cc *CatalogController) GetTables(c *gin.Context) {
	ns, err := ParseNamespace(c.Param("namespace"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tables, err := cc.Service.GetTables(ns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tables fetched successfully",
		"tables":  tables,
	})
}

// GET /api/columns/:namespace?table_id=
func (cc *CatalogController) GetColumns(c *gin.Context) {
	ns, err := ParseNamespace(c.Param("namespace"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tableID *int
	if raw := strings.TrimSpace(c.Query("table_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_id must be an integer"})
			return
		}
		tableID = &id
	}

	columns, err := cc.Service.GetColumns(ns, tableID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Columns fetched successfully",
		"columns": columns,
	})
}

func (cc *CatalogController) GetReleases(c *gin.Context) {
	releases, err := cc.Service.GetReleases()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Releases fetched successfully",
		"releases": releases,
	})
}
