package models

import "time"

type ClientReview struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Review      string    `gorm:"type:text"`
	Rating      int       `gorm:"not null;default:5"`
	Image       string    `gorm:"type:varchar(300)"` // optional
	CreatedDate time.Time `gorm:"autoCreateTime"`
}

// Stars is used by the templates to draw the rating
func (r *ClientReview) Stars() []struct{} {
	if r.Rating <= 0 {
		return nil
	}
	return make([]struct{}, r.Rating)
}
