package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grandywoods/models"
	"grandywoods/storage"
)

var (
	GuestList   = listPage(guests, orderNewest, "admin_guests.tmpl")
	GuestDelete = deleteAction(guests, "/guests/", "Guest deleted successfully.", func(g *models.Guest) []string {
		return []string{g.Image}
	})
)

func GuestAdd(c *gin.Context) {
	form := GuestForm{}
	if !isPost(c) {
		render(c, http.StatusOK, "admin_guest_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}})
		return
	}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", guestImages, true, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_guest_form.tmpl", gin.H{"Form": form, "Errors": errs})
		return
	}
	guest := models.Guest{
		Name:    strings.TrimSpace(form.Name),
		Details: form.Details,
		Image:   image,
	}
	if err = guests().Create(&guest); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/guests/")
}

func GuestUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	repo := guests()
	guest, err := repo.GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	if !isPost(c) {
		form := GuestForm{Name: guest.Name, Details: guest.Details}
		render(c, http.StatusOK, "admin_guest_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}, "Item": guest})
		return
	}
	form := GuestForm{}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", guestImages, false, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_guest_form.tmpl", gin.H{"Form": form, "Errors": errs, "Item": guest})
		return
	}
	old := guest.Image
	guest.Name = strings.TrimSpace(form.Name)
	guest.Details = form.Details
	if image != "" {
		guest.Image = image
	}
	if err = repo.Update(guest); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	if image != "" {
		storage.DeleteQuietly(storage.Default, old)
	}
	c.Redirect(http.StatusFound, "/guests/")
}
