package models

// TrainPlatform assigns a platform to a train. Every train has two of them:
// the start terminus of its line (Start=true) and the other end.
type TrainPlatform struct {
	TrainNumber int  `gorm:"column:train_nrtrain;primaryKey" yaml:"train" json:"train" validate:"required,gt=0"`
	PlatformID  int  `gorm:"column:platform_idplatform;primaryKey" yaml:"platform" json:"platform" validate:"required,gt=0"`
	Start       bool `gorm:"column:start;not null;default:false" yaml:"start" json:"start"`
}

func (TrainPlatform) TableName() string { return "train_has_platform" }
