package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grandywoods/models"
	"grandywoods/storage"
)

const (
	placeImages  = "places"
	reviewImages = "reviews"
	guestImages  = "guests"
)

var (
	PlaceList   = listPage(places, orderNewestByID, "admin_places.tmpl")
	PlaceDelete = deleteAction(places, "/view-near-by-place/", "", func(p *models.NearByPlace) []string {
		return []string{p.Image}
	})
)

// uploadImage validates and stores the image posted in field. When required is
// false a missing file is not an error and the returned name is empty.
func uploadImage(c *gin.Context, field, folder string, required bool, errs FieldErrors) (string, error) {
	file, msg := formImage(c, field)
	if msg != "" {
		errs.Add(field, msg)
	}
	if file == nil {
		if required {
			errs.Add(field, msgRequired)
		}
		return "", nil
	}
	if errs.Any() {
		return "", nil
	}
	return storeFile(file, folder)
}

func PlaceAdd(c *gin.Context) {
	form := PlaceForm{}
	if !isPost(c) {
		render(c, http.StatusOK, "admin_place_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}})
		return
	}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", placeImages, true, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_place_form.tmpl", gin.H{"Form": form, "Errors": errs})
		return
	}
	place := models.NearByPlace{
		Name:        strings.TrimSpace(form.Name),
		Description: form.Description,
		Image:       image,
	}
	if err = places().Create(&place); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/view-near-by-place/")
}

func PlaceUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	repo := places()
	place, err := repo.GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	if !isPost(c) {
		form := PlaceForm{Name: place.Name, Description: place.Description}
		render(c, http.StatusOK, "admin_place_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}, "Item": place})
		return
	}
	form := PlaceForm{}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", placeImages, false, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_place_form.tmpl", gin.H{"Form": form, "Errors": errs, "Item": place})
		return
	}
	old := place.Image
	place.Name = strings.TrimSpace(form.Name)
	place.Description = form.Description
	if image != "" {
		place.Image = image
	}
	if err = repo.Update(place); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	if image != "" {
		storage.DeleteQuietly(storage.Default, old)
	}
	c.Redirect(http.StatusFound, "/view-near-by-place/")
}
