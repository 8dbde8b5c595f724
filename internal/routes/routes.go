package routes

import (
	"github.com/gin-gonic/gin"

	"train_routes/internal/controllers"
)

// SetupRouter registers the board endpoints on a new engine. Extra
// middleware (logging, recovery) is added by the caller.
func SetupRouter(sc *controllers.ScheduleController, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	ScheduleRoutes(r, sc)
	TrainRoutes(r, sc)

	return r
}
