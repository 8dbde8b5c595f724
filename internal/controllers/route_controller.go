package controllers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"train_routes/internal/models"
	"train_routes/internal/schedule"
)

// RouteRegistry is what the board needs from the schedule registry.
type RouteRegistry interface {
	Reload() error
	Get(id int) (*schedule.Route, bool)
	Len() int
	Routes() []*schedule.Route
	Trains() ([]models.TrainSummary, error)
}

// ScheduleController serves the loaded routes read-only. The registry is
// built for a single actor, so every handler holds the mutex.
type ScheduleController struct {
	mu       sync.Mutex
	registry RouteRegistry
	log      logrus.FieldLogger
}

func NewScheduleController(registry RouteRegistry, log logrus.FieldLogger) *ScheduleController {
	return &ScheduleController{registry: registry, log: log.WithField("component", "board")}
}

// ListRoutes returns every loaded route ordered by id
func (sc *ScheduleController) ListRoutes(c *gin.Context) {
	sc.mu.Lock()
	routes := sc.registry.Routes()
	sc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GetRoute returns a single route
func (sc *ScheduleController) GetRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sc.log.WithError(err).Warn("GetRoute: Invalid route ID in parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	sc.mu.Lock()
	route, ok := sc.registry.Get(id)
	sc.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// ReloadRoutes refreshes the registry from the database.
func (sc *ScheduleController) ReloadRoutes(c *gin.Context) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if err := sc.registry.Reload(); err != nil {
		sc.log.WithError(err).Error("ReloadRoutes: Failed to reload routes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reload failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": sc.registry.Len()})
}
