package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grandywoods/models"
	"grandywoods/storage"
)

var (
	ReviewList   = listPage(reviews, orderNewestByID, "admin_reviews.tmpl")
	ReviewDelete = deleteAction(reviews, "/view-client-reviews/", "", func(r *models.ClientReview) []string {
		return []string{r.Image}
	})
)

func ReviewAdd(c *gin.Context) {
	form := ReviewForm{Rating: 5}
	if !isPost(c) {
		render(c, http.StatusOK, "admin_review_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}})
		return
	}
	form = ReviewForm{}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", reviewImages, false, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_review_form.tmpl", gin.H{"Form": form, "Errors": errs})
		return
	}
	review := models.ClientReview{
		Name:   strings.TrimSpace(form.Name),
		Review: form.Review,
		Rating: form.Rating,
		Image:  image,
	}
	if err = reviews().Create(&review); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/view-client-reviews/")
}

func ReviewUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	repo := reviews()
	review, err := repo.GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	if !isPost(c) {
		form := ReviewForm{Name: review.Name, Review: review.Review, Rating: review.Rating}
		render(c, http.StatusOK, "admin_review_form.tmpl", gin.H{"Form": form, "Errors": FieldErrors{}, "Item": review})
		return
	}
	form := ReviewForm{}
	errs := bindForm(c, &form)
	image, err := uploadImage(c, "image", reviewImages, false, errs)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		render(c, http.StatusBadRequest, "admin_review_form.tmpl", gin.H{"Form": form, "Errors": errs, "Item": review})
		return
	}
	old := review.Image
	review.Name = strings.TrimSpace(form.Name)
	review.Review = form.Review
	review.Rating = form.Rating
	if image != "" {
		review.Image = image
	}
	if err = repo.Update(review); err != nil {
		storage.DeleteQuietly(storage.Default, image)
		renderServerError(c, err)
		return
	}
	if image != "" {
		storage.DeleteQuietly(storage.Default, old)
	}
	c.Redirect(http.StatusFound, "/view-client-reviews/")
}
