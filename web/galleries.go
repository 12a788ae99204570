package web

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grandywoods/config"
	"grandywoods/db"
	"grandywoods/models"
	"grandywoods/storage"
	"grandywoods/utils"
)

const (
	galleryImages = "gallery"
	galleryThumbs = "gallery/thumbs"
)

var (
	FolderList  = listPage(folders, orderNewestByID, "admin_folders.tmpl")
	GalleryList = listPage(galleries, orderNewestByID, "admin_galleries.tmpl")
)

func imageFiles(images []models.GalleryImage) (names []string) {
	for _, img := range images {
		names = append(names, img.Image, img.Thumb)
	}
	return
}

func FolderAdd(c *gin.Context) {
	folderForm(c, &models.Folder{})
}

func FolderUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	folder, err := folders().GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	folderForm(c, folder)
}

// folderForm creates the folder when it has no ID yet, updates it otherwise
func folderForm(c *gin.Context, folder *models.Folder) {
	data := gin.H{"Errors": FieldErrors{}}
	if folder.ID > 0 {
		data["Item"] = folder
	}
	if !isPost(c) {
		data["Form"] = FolderForm{Name: folder.Name}
		render(c, http.StatusOK, "admin_folder_form.tmpl", data)
		return
	}
	form := FolderForm{}
	errs := bindForm(c, &form)
	form.Name = strings.TrimSpace(form.Name)
	if !errs.Any() {
		taken, err := models.FolderNameTaken(db.Instance, form.Name, folder.ID)
		if err != nil {
			renderServerError(c, err)
			return
		}
		if taken {
			errs.Add("name", "Folder with this Name already exists.")
		}
	}
	if errs.Any() {
		data["Form"] = form
		data["Errors"] = errs
		render(c, http.StatusBadRequest, "admin_folder_form.tmpl", data)
		return
	}
	folder.Name = form.Name
	var err error
	if folder.ID > 0 {
		err = folders().Update(folder)
	} else {
		err = folders().Create(folder)
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/add-images/")
}

func FolderDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	removed, err := models.DeleteFolder(db.Instance, id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	storage.DeleteQuietly(storage.Default, imageFiles(removed)...)
	c.Redirect(http.StatusFound, "/view-folders/")
}

// storeGalleryImages saves the uploads together with their thumbnails
func storeGalleryImages(files []*multipart.FileHeader) ([]models.GalleryImage, error) {
	images := make([]models.GalleryImage, 0, len(files))
	for _, file := range files {
		name, err := storeFile(file, galleryImages)
		if err != nil {
			storage.DeleteQuietly(storage.Default, imageFiles(images)...)
			return nil, err
		}
		thumb, err := storeThumb(file, name)
		if err != nil {
			// the original is still usable without a thumbnail
			log.Warn().Err(err).Str("image", name).Msg("cannot create thumbnail")
		}
		images = append(images, models.GalleryImage{Image: name, Thumb: thumb})
	}
	return images, nil
}

func storeThumb(file *multipart.FileHeader, name string) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()
	var buf bytes.Buffer
	if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), reader, &buf); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	return storage.Default.Save(galleryThumbs+"/"+base+".jpg", &buf)
}

func galleryFormData(c *gin.Context, data gin.H) bool {
	allFolders, err := folders().List("name")
	if err != nil {
		renderServerError(c, err)
		return false
	}
	data["Folders"] = allFolders
	return true
}

// checkGalleryForm validates the fields shared by create and update
func checkGalleryForm(c *gin.Context, form *GalleryForm) (FieldErrors, []*multipart.FileHeader, error) {
	errs := bindForm(c, form)
	form.Title = strings.TrimSpace(form.Title)
	if _, exists := errs["folder"]; !exists && form.FolderID > 0 {
		if _, err := folders().GetByID(form.FolderID); errors.Is(err, models.ErrNotFound) {
			errs.Add("folder", "Select a valid choice. That choice is not one of the available choices.")
		} else if err != nil {
			return nil, nil, err
		}
	}
	files, msg := formImages(c, "images")
	if msg != "" {
		errs.Add("images", msg)
	}
	return errs, files, nil
}

func GalleryAdd(c *gin.Context) {
	data := gin.H{"Form": GalleryForm{}, "Errors": FieldErrors{}}
	if !galleryFormData(c, data) {
		return
	}
	if !isPost(c) {
		render(c, http.StatusOK, "admin_gallery_form.tmpl", data)
		return
	}
	form := GalleryForm{}
	errs, files, err := checkGalleryForm(c, &form)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		data["Form"] = form
		data["Errors"] = errs
		render(c, http.StatusBadRequest, "admin_gallery_form.tmpl", data)
		return
	}
	images, err := storeGalleryImages(files)
	if err != nil {
		renderServerError(c, err)
		return
	}
	gallery := models.Gallery{Title: form.Title, FolderID: form.FolderID}
	if err = models.CreateGallery(db.Instance, &gallery, images); err != nil {
		storage.DeleteQuietly(storage.Default, imageFiles(images)...)
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/view-images/")
}

func GalleryUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	gallery, err := galleries().GetByID(id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	data := gin.H{
		"Form":   GalleryForm{Title: gallery.Title, FolderID: gallery.FolderID},
		"Errors": FieldErrors{},
		"Item":   gallery,
	}
	if !galleryFormData(c, data) {
		return
	}
	if !isPost(c) {
		render(c, http.StatusOK, "admin_gallery_form.tmpl", data)
		return
	}
	form := GalleryForm{}
	errs, files, err := checkGalleryForm(c, &form)
	if err != nil {
		renderServerError(c, err)
		return
	}
	if errs.Any() {
		data["Form"] = form
		data["Errors"] = errs
		render(c, http.StatusBadRequest, "admin_gallery_form.tmpl", data)
		return
	}
	images, err := storeGalleryImages(files)
	if err != nil {
		renderServerError(c, err)
		return
	}
	gallery.Title = form.Title
	gallery.FolderID = form.FolderID
	gallery.Folder = models.Folder{}
	gallery.Images = nil
	removed, err := models.UpdateGallery(db.Instance, gallery, form.RemoveImage, images)
	if err != nil {
		storage.DeleteQuietly(storage.Default, imageFiles(images)...)
		renderServerError(c, err)
		return
	}
	storage.DeleteQuietly(storage.Default, imageFiles(removed)...)
	c.Redirect(http.StatusFound, "/view-images/")
}

func GalleryDelete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		renderNotFound(c)
		return
	}
	removed, err := models.DeleteGallery(db.Instance, id)
	if err != nil {
		renderLookupError(c, err)
		return
	}
	storage.DeleteQuietly(storage.Default, imageFiles(removed)...)
	c.Redirect(http.StatusFound, "/view-images/")
}
