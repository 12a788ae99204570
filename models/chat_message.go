package models

import "time"

type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	Email     string    `gorm:"type:varchar(150);not null"`
	Message   string    `gorm:"type:text;not null"`
}
