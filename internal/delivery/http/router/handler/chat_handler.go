package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for direct-messaging handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessage accepts a multipart form: receiver_id, message_type and
// either text or a file part, depending on the type.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	senderID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	receiverID, err := uuid.Parse(c.FormValue("receiver_id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receiver_id")
	}

	input := &usecase.SendMessageInput{
		ReceiverID:  receiverID,
		MessageType: c.FormValue("message_type"),
		Text:        c.FormValue("text"),
	}

	if input.MessageType != entity.ChatMessageTypeText {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Media message requires a file part")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return errors.WithStack(err)
		}
		defer file.Close()

		input.FileName = fileHeader.Filename
		input.File = file
	}

	message, err := h.uc.SendMessage(c.Request().Context(), senderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// GetConversation returns the full conversation with another user,
// oldest first.
func (h *ChatHandler) GetConversation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	otherID, err := pathUUID(c, "user_id")
	if err != nil {
		return errors.WithStack(err)
	}

	messages, err := h.uc.GetConversation(c.Request().Context(), userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}
