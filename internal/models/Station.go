package models

// Station is a railway station. Stations are seeded once and never change.
type Station struct {
	ID   int    `gorm:"column:idstation;primaryKey" yaml:"id" json:"id" validate:"required,gt=0"`
	Name string `gorm:"column:name;size:45;not null" yaml:"name" json:"name" validate:"required,max=45"`
}

func (Station) TableName() string { return "station" }
