package web

import (
	"grandywoods/db"
	"grandywoods/models"
)

const (
	orderNewest     = "created_date DESC, id DESC"
	orderNewestByID = "id DESC"
)

func places() models.Repository[models.NearByPlace] {
	return models.NewRepository[models.NearByPlace](db.Instance)
}

func reviews() models.Repository[models.ClientReview] {
	return models.NewRepository[models.ClientReview](db.Instance)
}

func bookings() models.Repository[models.Booking] {
	return models.NewRepository[models.Booking](db.Instance)
}

func contacts() models.Repository[models.Contact] {
	return models.NewRepository[models.Contact](db.Instance)
}

func chatMessages() models.Repository[models.ChatMessage] {
	return models.NewRepository[models.ChatMessage](db.Instance)
}

func guests() models.Repository[models.Guest] {
	return models.NewRepository[models.Guest](db.Instance)
}

func folders() models.Repository[models.Folder] {
	return models.NewRepository[models.Folder](db.Instance)
}

func galleries() models.Repository[models.Gallery] {
	return models.NewRepository[models.Gallery](db.Instance, "Folder", "Images")
}
