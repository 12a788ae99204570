package web

import (
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"grandywoods/config"
	"grandywoods/models"
	"grandywoods/storage"
	"grandywoods/utils"
)

// nonFieldErrors is the key of errors not tied to a single input
const nonFieldErrors = "__all__"

const (
	msgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	msgRequired     = "This field is required."
	msgTooLarge     = "File is too large."
)

// FieldErrors maps a form field name to its error message
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// bindForm decodes the submitted form into obj (a pointer to a form struct) and
// validates it using its binding tags
func bindForm(c *gin.Context, obj interface{}) FieldErrors {
	errs := FieldErrors{}
	err := c.ShouldBindWith(obj, binding.Form)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(nonFieldErrors, "Some values are not in the expected format.")
		return errs
	}
	t := reflect.TypeOf(obj).Elem()
	for _, fe := range verrs {
		name := fe.StructField()
		if f, ok := t.FieldByName(name); ok {
			if tag := strings.Split(f.Tag.Get("form"), ",")[0]; tag != "" {
				name = tag
			}
		}
		errs.Add(name, validationMessage(fe))
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	}
	return "Enter a valid value."
}

// idParam parses the :id route parameter
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// formImage returns the image posted in field, nil if there is none.
// A non empty message means the file is not acceptable.
func formImage(c *gin.Context, field string) (*multipart.FileHeader, string) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, ""
	}
	return file, checkImage(file)
}

// formImages returns all the images posted in field
func formImages(c *gin.Context, field string) ([]*multipart.FileHeader, string) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, ""
	}
	files := form.File[field]
	for _, file := range files {
		if msg := checkImage(file); msg != "" {
			return nil, msg
		}
	}
	return files, ""
}

func checkImage(file *multipart.FileHeader) string {
	if file.Size > int64(config.MAX_UPLOAD_MB)<<20 {
		return msgTooLarge
	}
	reader, err := file.Open()
	if err != nil {
		return msgInvalidImage
	}
	defer reader.Close()
	if !utils.IsImage(reader) {
		return msgInvalidImage
	}
	return ""
}

// storeFile saves an uploaded file under folder and returns the stored name
func storeFile(file *multipart.FileHeader, folder string) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()
	return storage.Default.Save(folder+"/"+storage.CleanName(file.Filename), reader)
}

// isPost tells apart the submit from the render of a form handler
func isPost(c *gin.Context) bool {
	return c.Request.Method == http.MethodPost
}

type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=150"`
	Phone   string `form:"phone" binding:"max=30"`
	Subject string `form:"subject" binding:"max=200"`
	Message string `form:"message" binding:"required,max=5000"`
}

func (f *ContactForm) Model() models.Contact {
	return models.Contact{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

type BookingForm struct {
	Name     string    `form:"name" binding:"required,max=100"`
	Email    string    `form:"email" binding:"required,email,max=150"`
	Phone    string    `form:"phone" binding:"required,max=30"`
	CheckIn  time.Time `form:"check_in" time_format:"2006-01-02" time_utc:"1" binding:"required"`
	CheckOut time.Time `form:"check_out" time_format:"2006-01-02" time_utc:"1" binding:"required"`
	Adults   int       `form:"adults" binding:"required,gte=1,lte=20"`
	Children int       `form:"children" binding:"gte=0,lte=20"`
	Message  string    `form:"message" binding:"max=2000"`
}

// validate runs the checks spanning more than one field
func (f *BookingForm) validate(errs FieldErrors, now time.Time) {
	if f.CheckIn.IsZero() || f.CheckOut.IsZero() {
		return
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if f.CheckIn.Before(today) {
		errs.Add("check_in", "Check-in cannot be in the past.")
	}
	if !f.CheckOut.After(f.CheckIn) {
		errs.Add("check_out", "Check-out must be after check-in.")
	}
}

func (f *BookingForm) Model() models.Booking {
	return models.Booking{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		CheckIn:  f.CheckIn,
		CheckOut: f.CheckOut,
		Adults:   f.Adults,
		Children: f.Children,
		Message:  strings.TrimSpace(f.Message),
	}
}

type PlaceForm struct {
	Name        string `form:"name" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
}

type ReviewForm struct {
	Name   string `form:"name" binding:"required,max=100"`
	Review string `form:"review" binding:"required"`
	Rating int    `form:"rating" binding:"required,gte=1,lte=5"`
}

type FolderForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

type GalleryForm struct {
	Title       string   `form:"title" binding:"required,max=200"`
	FolderID    uint64   `form:"folder" binding:"required"`
	RemoveImage []uint64 `form:"remove_image"`
}

type GuestForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Details string `form:"details"`
}

// PriceForm is decoded by hand: an empty offer price must stay nil
type PriceForm struct {
	PricePerNight string
	OfferPrice    string
}

func decodePriceForm(c *gin.Context) (PriceForm, *models.RoomPrice, FieldErrors) {
	f := PriceForm{
		PricePerNight: strings.TrimSpace(c.PostForm("price_per_night")),
		OfferPrice:    strings.TrimSpace(c.PostForm("offer_price")),
	}
	errs := FieldErrors{}
	price := &models.RoomPrice{}
	if f.PricePerNight == "" {
		errs.Add("price_per_night", msgRequired)
	} else if v, msg := parsePrice(f.PricePerNight); msg != "" {
		errs.Add("price_per_night", msg)
	} else {
		price.PricePerNight = v
	}
	if f.OfferPrice != "" {
		if v, msg := parsePrice(f.OfferPrice); msg != "" {
			errs.Add("offer_price", msg)
		} else {
			price.OfferPrice = &v
		}
	}
	if errs.Any() {
		return f, nil, errs
	}
	return f, price, errs
}

// parsePrice returns a non empty message when s is not a usable price
func parsePrice(s string) (float64, string) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, "Enter a number."
	}
	if v < 0 || v >= 1e8 {
		return 0, "Ensure this value is between 0 and 99999999.99."
	}
	return v, ""
}
