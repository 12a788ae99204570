package models

import "time"

// Contact is a message left through the public contact form
type Contact struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(150);not null"`
	Phone     string `gorm:"type:varchar(30)"`
	Subject   string `gorm:"type:varchar(200)"`
	Message   string `gorm:"type:text;not null"`
}
