package models

// TrainType is a rolling-stock category such as ICE or REX.
type TrainType struct {
	ID   int    `gorm:"column:idtraintype;primaryKey" yaml:"id" json:"id" validate:"required,gt=0"`
	Name string `gorm:"column:name;size:45;not null" yaml:"name" json:"name" validate:"required,max=45"`
}

func (TrainType) TableName() string { return "traintype" }
