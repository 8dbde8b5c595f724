package routes

import (
	"github.com/gin-gonic/gin"

	"train_routes/internal/controllers"
)

func ScheduleRoutes(r *gin.Engine, sc *controllers.ScheduleController) {
	schedule := r.Group("/routes")
	{
		schedule.GET("", sc.ListRoutes)
		schedule.GET("/:id", sc.GetRoute)
		schedule.POST("/reload", sc.ReloadRoutes)
	}
}

func TrainRoutes(r *gin.Engine, sc *controllers.ScheduleController) {
	r.GET("/trains", sc.ListTrains)
}
