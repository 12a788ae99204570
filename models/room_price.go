package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// RoomPrice holds the nightly rate. At most one row exists, see SetRoomPrice.
type RoomPrice struct {
	ID            uint64   `gorm:"primaryKey"`
	PricePerNight float64  `gorm:"type:decimal(10,2);not null"`
	OfferPrice    *float64 `gorm:"type:decimal(10,2)"`
	UpdatedAt     time.Time
}

func (p *RoomPrice) HasOffer() bool {
	return p.OfferPrice != nil
}

// CurrentRoomPrice returns nil (and no error) when no price was set yet
func CurrentRoomPrice(db *gorm.DB) (*RoomPrice, error) {
	var price RoomPrice
	err := db.Order("id").First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// SetRoomPrice replaces whatever is stored with price, in a single transaction
func SetRoomPrice(db *gorm.DB, price *RoomPrice) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RoomPrice{}).Error; err != nil {
			return err
		}
		price.ID = 0
		return tx.Create(price).Error
	})
}

func CountRoomPrices(db *gorm.DB) (count int64, err error) {
	err = db.Model(&RoomPrice{}).Count(&count).Error
	return
}
