package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grandywoods/db"
	"grandywoods/models"
)

type ChatMessageRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *ChatMessageRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *ChatMessageRequest) complete() bool {
	return r.Name != "" && r.Phone != "" && r.Email != "" && r.Message != ""
}

// ChatMessageSave stores a message left through the chat widget
func ChatMessageSave(c *gin.Context) {
	r := ChatMessageRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, ChatBadRequestResponse)
		return
	}
	r.trim()
	if !r.complete() {
		c.JSON(http.StatusBadRequest, ChatMissingFieldsResponse)
		return
	}
	message := models.ChatMessage{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Message: r.Message,
	}
	if err := models.NewRepository[models.ChatMessage](db.Instance).Create(&message); err != nil {
		log.Error().Err(err).Msg("saving chat message")
		c.JSON(http.StatusInternalServerError, ChatDBErrorResponse)
		return
	}
	c.JSON(http.StatusOK, ChatOKResponse)
}

func ChatMessageBadMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ChatBadMethodResponse)
}
