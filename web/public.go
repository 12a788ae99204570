package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grandywoods/auth"
	"grandywoods/db"
	"grandywoods/models"
)

const (
	homePlaces  = 3
	otherPlaces = 5
)

func Home(c *gin.Context) {
	randomPlaces, err := models.RandomPlaces(db.Instance, homePlaces)
	if err != nil {
		renderServerError(c, err)
		return
	}
	allReviews, err := reviews().List("id")
	if err != nil {
		renderServerError(c, err)
		return
	}
	allGuests, err := guests().List(orderNewest)
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{
		"Places":  randomPlaces,
		"Reviews": allReviews,
		"Guests":  allGuests,
	})
}

func About(c *gin.Context) {
	allReviews, err := reviews().List("id")
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "about.tmpl", gin.H{"Reviews": allReviews})
}

// Room shows the guests that stayed with us and the current rate
func Room(c *gin.Context) {
	allGuests, err := guests().List(orderNewest)
	if err != nil {
		renderServerError(c, err)
		return
	}
	price, err := models.CurrentRoomPrice(db.Instance)
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "room.tmpl", gin.H{
		"Guests": allGuests,
		"Price":  price,
	})
}

func NearByPlaces(c *gin.Context) {
	list, err := places().List(orderNewest)
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "near_by_places.tmpl", gin.H{"Places": list})
}

func NearByPlaceDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	place, err := places().GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	others, err := models.OtherPlaces(db.Instance, id, otherPlaces)
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "near_by_place_detail.tmpl", gin.H{
		"Place":  place,
		"Others": others,
	})
}

func Gallery(c *gin.Context) {
	allFolders, err := folders().List(orderNewestByID)
	if err != nil {
		renderServerError(c, err)
		return
	}
	images, err := models.GalleryImages(db.Instance)
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "gallery.tmpl", gin.H{
		"Folders": allFolders,
		"Images":  images,
	})
}

// Contact renders the contact form and stores the submitted messages
func Contact(c *gin.Context) {
	form := ContactForm{}
	if !isPost(c) {
		render(c, http.StatusOK, "contact.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}})
		return
	}
	errs := bindForm(c, &form)
	if errs.Any() {
		render(c, http.StatusBadRequest, "contact.tmpl", gin.H{"Form": form, "Errors": errs})
		return
	}
	contact := form.Model()
	if err := contacts().Create(&contact); err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "contact.tmpl", gin.H{
		"Form":   ContactForm{},
		"Errors": FieldErrors{},
		"Sent":   true,
	})
}

// Booking renders the booking form and stores booking requests
func Booking(c *gin.Context) {
	form := BookingForm{}
	if !isPost(c) {
		render(c, http.StatusOK, "booking.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}})
		return
	}
	errs := bindForm(c, &form)
	form.validate(errs, time.Now().UTC())
	session := auth.LoadSession(c)
	if errs.Any() {
		session.Error("There was an error in your booking.")
		render(c, http.StatusBadRequest, "booking.tmpl", gin.H{"Form": form, "Errors": errs})
		return
	}
	booking := form.Model()
	if err := bookings().Create(&booking); err != nil {
		renderServerError(c, err)
		return
	}
	session.Success("Booking successful!")
	c.Redirect(http.StatusFound, "/booking/")
}

func Robots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /login/\nDisallow: /dashboard/\nDisallow: /editor-upload/\n")
}
