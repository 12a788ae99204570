package models

import "time"

type Booking struct {
	ID        uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(150);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	CheckIn   time.Time `gorm:"type:date;not null"`
	CheckOut  time.Time `gorm:"type:date;not null"`
	Adults    int       `gorm:"not null;default:1"`
	Children  int       `gorm:"not null;default:0"`
	Message   string    `gorm:"type:text"`
}

// Nights returns the length of the stay
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
