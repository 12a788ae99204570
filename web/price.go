package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grandywoods/auth"
	"grandywoods/db"
	"grandywoods/models"
)

// PriceSet shows the current room price and replaces it on submit
func PriceSet(c *gin.Context) {
	current, err := models.CurrentRoomPrice(db.Instance)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if !isPost(c) {
		form := PriceForm{}
		if current != nil {
			form.PricePerNight = formatPrice(current.PricePerNight)
			if current.HasOffer() {
				form.OfferPrice = formatPrice(*current.OfferPrice)
			}
		}
		render(c, http.StatusOK, "admin_price.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}, "Item": current})
		return
	}
	form, price, errs := decodePriceForm(c)
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_price.tmpl", gin.H{"Form": form, "Errors": errs, "Item": current})
		return
	}
	if err = models.SetRoomPrice(db.Instance, price); err != nil {
		renderServerError(c, err)
		return
	}
	auth.LoadSession(c).Success("Room price saved.")
	c.Redirect(http.StatusFound, "/add-price/")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
