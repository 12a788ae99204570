package models

import (
	"time"

	"gorm.io/gorm"
)

type NearByPlace struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(300)"`
	CreatedDate time.Time `gorm:"autoCreateTime;index"`
}

// RandomPlaces picks n places in random order, used for the home page teaser
func RandomPlaces(db *gorm.DB, n int) (places []NearByPlace, err error) {
	err = db.Order(randomOrder(db)).Limit(n).Find(&places).Error
	return
}

// OtherPlaces returns up to n places other than the one with excludeID, newest first
func OtherPlaces(db *gorm.DB, excludeID uint64, n int) (places []NearByPlace, err error) {
	err = db.Where("id <> ?", excludeID).Order("created_date DESC, id DESC").Limit(n).Find(&places).Error
	return
}

func randomOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
