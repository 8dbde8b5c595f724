package models

// City names the place a station is in.
type City struct {
	ID        int    `gorm:"column:idcity;primaryKey" yaml:"id" json:"id" validate:"required,gt=0"`
	Name      string `gorm:"column:name;size:45;not null" yaml:"name" json:"name" validate:"required,max=45"`
	StationID int    `gorm:"column:station_idstation;not null" yaml:"station" json:"station_id" validate:"required,gt=0"`
}

func (City) TableName() string { return "city" }
