package models

import "time"

type Guest struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Details     string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(300)"`
	CreatedDate time.Time `gorm:"autoCreateTime;index"`
}
