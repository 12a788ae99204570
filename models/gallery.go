package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Folder struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

type Gallery struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	Title     string `gorm:"type:varchar(200);not null"`
	FolderID  uint64 `gorm:"not null;index"`
	Folder    Folder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Images    []GalleryImage
}

type GalleryImage struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	GalleryID uint64  `gorm:"not null;index"`
	Gallery   Gallery `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Image     string  `gorm:"type:varchar(300);not null"`
	Thumb     string  `gorm:"type:varchar(300)"`
}

// FolderNameTaken reports whether another folder already uses name
func FolderNameTaken(db *gorm.DB, name string, exceptID uint64) (bool, error) {
	var count int64
	err := db.Model(&Folder{}).Where("name = ? AND id <> ?", name, exceptID).Count(&count).Error
	return count > 0, err
}

// GalleryImages returns all images with their gallery and folder, newest first
func GalleryImages(db *gorm.DB) (images []GalleryImage, err error) {
	err = db.Preload("Gallery.Folder").Order("id DESC").Find(&images).Error
	return
}

func CreateGallery(db *gorm.DB, gallery *Gallery, images []GalleryImage) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(gallery).Error; err != nil {
			return err
		}
		return addImages(tx, gallery.ID, images)
	})
}

// UpdateGallery overwrites the gallery, drops its images listed in removeIDs and
// appends the new ones. Ids that do not belong to the gallery are ignored.
// The removed rows are returned so the caller can clean up their files.
func UpdateGallery(db *gorm.DB, gallery *Gallery, removeIDs []uint64, images []GalleryImage) (removed []GalleryImage, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(gallery).Error; err != nil {
			return err
		}
		if len(removeIDs) > 0 {
			if err := tx.Where("gallery_id = ? AND id IN ?", gallery.ID, removeIDs).Find(&removed).Error; err != nil {
				return err
			}
			if len(removed) > 0 {
				if err := tx.Delete(&removed).Error; err != nil {
					return err
				}
			}
		}
		return addImages(tx, gallery.ID, images)
	})
	return
}

// DeleteGallery removes the gallery together with its images
func DeleteGallery(db *gorm.DB, id uint64) (removed []GalleryImage, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = deleteGalleries(tx, "id = ?", id)
		return err
	})
	return
}

// DeleteFolder removes the folder, its galleries and all of their images
func DeleteFolder(db *gorm.DB, id uint64) (removed []GalleryImage, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var folder Folder
		if err := tx.First(&folder, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var err error
		if removed, err = deleteGalleries(tx, "folder_id = ?", id); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		return tx.Delete(&folder).Error
	})
	return
}

func deleteGalleries(tx *gorm.DB, query string, args ...interface{}) (removed []GalleryImage, err error) {
	var ids []uint64
	if err = tx.Model(&Gallery{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	if err = tx.Where("gallery_id IN ?", ids).Find(&removed).Error; err != nil {
		return
	}
	if err = tx.Where("gallery_id IN ?", ids).Delete(&GalleryImage{}).Error; err != nil {
		return
	}
	err = tx.Where("id IN ?", ids).Delete(&Gallery{}).Error
	return
}

func addImages(tx *gorm.DB, galleryID uint64, images []GalleryImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].GalleryID = galleryID
	}
	return tx.Omit(clause.Associations).Create(&images).Error
}
