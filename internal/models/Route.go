package models

import (
	"time"
)

// Route is one stored trip of a train. Direction true is a forwards trip.
type Route struct {
	ID          int       `gorm:"column:idroute;primaryKey" yaml:"id" json:"id" validate:"required,gt=0"`
	Arrival     time.Time `gorm:"column:arrival;not null" yaml:"arrival" json:"arrival" validate:"required"`
	Departure   time.Time `gorm:"column:departure;not null" yaml:"departure" json:"departure" validate:"required"`
	TrainNumber int       `gorm:"column:train_nrtrain;not null" yaml:"train" json:"train" validate:"required,gt=0"`
	Direction   bool      `gorm:"column:direction;not null;default:false" yaml:"direction" json:"direction"`
}

func (Route) TableName() string { return "route" }
