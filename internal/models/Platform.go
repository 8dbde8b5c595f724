package models

// Platform belongs to exactly one station.
type Platform struct {
	ID        int `gorm:"column:idplatform;primaryKey" yaml:"id" json:"id" validate:"required,gt=0"`
	Number    int `gorm:"column:nr;not null" yaml:"number" json:"number" validate:"required,gt=0"`
	StationID int `gorm:"column:station_idstation;not null" yaml:"station" json:"station_id" validate:"required,gt=0"`
}

func (Platform) TableName() string { return "platform" }
