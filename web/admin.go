package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grandywoods/auth"
	"grandywoods/models"
	"grandywoods/storage"
)

// listPage renders every row of a table with the given template
func listPage[T any](repo func() models.Repository[T], order, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo().List(order)
		if err != nil {
			renderServerError(c, err)
			return
		}
		render(c, http.StatusOK, name, gin.H{"Items": items})
	}
}

// deleteAction removes the row with the :id and then the media files it pointed at
func deleteAction[T any](repo func() models.Repository[T], redirect, message string, files func(*T) []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			renderNotFound(c)
			return
		}
		r := repo()
		item, err := r.GetByID(id)
		if err != nil {
			renderLookupError(c, err)
			return
		}
		if err = r.Delete(id); err != nil {
			renderLookupError(c, err)
			return
		}
		if files != nil {
			storage.DeleteQuietly(storage.Default, files(item)...)
		}
		if message != "" {
			auth.LoadSession(c).Success(message)
		}
		c.Redirect(http.StatusFound, redirect)
	}
}

var (
	ContactList   = listPage(contacts, orderNewestByID, "admin_contacts.tmpl")
	ContactDelete = deleteAction(contacts, "/contact-view/", "", nil)

	BookingList   = listPage(bookings, orderNewestByID, "admin_bookings.tmpl")
	BookingDelete = deleteAction(bookings, "/booking-view/", "", nil)

	ChatMessageList   = listPage(chatMessages, "created_at DESC, id DESC", "admin_chat_messages.tmpl")
	ChatMessageDelete = deleteAction(chatMessages, "/view-chatbot-messages/", "", nil)
)
