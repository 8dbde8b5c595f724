package models

import "time"

type Train struct {
	Number      int       `gorm:"column:nrtrain;primaryKey" yaml:"number" json:"number" validate:"required,gt=0"`
	TrainTypeID int       `gorm:"column:traintype_idtraintype;not null" yaml:"type" json:"type_id" validate:"required,gt=0"`
	Acquisition time.Time `gorm:"column:acquisition;type:date;not null" yaml:"acquisition" json:"acquisition" validate:"required"`
}

func (Train) TableName() string { return "train" }

// TrainSummary is a train joined with the name of its type.
type TrainSummary struct {
	Number   int    `json:"number"`
	TypeName string `json:"type"`
}
