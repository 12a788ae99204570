package models

import "gorm.io/gorm"

func Init(db *gorm.DB) error {
	return db.AutoMigrate(
		&NearByPlace{},
		&ClientReview{},
		&Folder{},
		&Gallery{},
		&GalleryImage{},
		&Booking{},
		&Contact{},
		&RoomPrice{},
		&ChatMessage{},
		&Guest{},
	)
}
