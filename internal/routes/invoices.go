package routes

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rm-hull/paypal-api/internal"
	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/rm-hull/paypal-api/internal/stats"
)

const (
	DEFAULT_LIMIT = 100
	MAX_LIMIT     = 1000
)

func Invoices(repo internal.InvoiceRepository) func(c *gin.Context) {
	return func(c *gin.Context) {
		status := models.InvoiceStatus(strings.ToUpper(c.Query("status")))
		if status != "" && !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status parameter"})
			return
		}

		limitStr := c.Query("limit")
		limit := DEFAULT_LIMIT
		if limitStr != "" {
			l, lerr := strconv.Atoi(limitStr)
			if lerr != nil || l <= 0 || l > MAX_LIMIT {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
				return
			}
			limit = l
		}

		results, err := repo.Search(status, limit)
		if err != nil {
			log.Printf("error while searching invoices: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}

		lastSynced, err := repo.LastSynced()
		if err != nil {
			log.Printf("error while fetching last sync time: %v", err)
		}

		c.JSON(http.StatusOK, models.SearchResponse{
			Results:     results,
			Statistics:  stats.Derive(results),
			LastUpdated: lastSynced,
		})
	}
}
