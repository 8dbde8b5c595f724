package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTrains returns every train with its type name.
func (sc *ScheduleController) ListTrains(c *gin.Context) {
	sc.mu.Lock()
	trains, err := sc.registry.Trains()
	sc.mu.Unlock()

	if err != nil {
		sc.log.WithError(err).Error("ListTrains: Database error fetching trains")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trains"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trains})
}
