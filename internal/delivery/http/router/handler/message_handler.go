package handler

import (
	"log/slog"
	"net/http"

	"github.com/irabeny89/ebbs-io/internal/delivery/http/middleware"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/response"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
	Logger      *slog.Logger
}

// MessageHandler holds dependencies for direct-message handlers.
type MessageHandler struct {
	messagingUC usecase.MessagingUsecase
	logger      *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messagingUC: params.MessagingUC,
		logger:      params.Logger,
	}
}

// SendMessage sends a direct message to another user.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.SenderID = payload.UserID

	message, err := h.messagingUC.SendMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// Inbox pages through the conversation with another user.
func (h *MessageHandler) Inbox(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.messagingUC.Inbox(c.Request().Context(), payload.UserID, otherID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Conversation retrieved successfully")
}

// Correspondents lists the users the caller has exchanged messages with.
func (h *MessageHandler) Correspondents(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	correspondents, err := h.messagingUC.Correspondents(c.Request().Context(), payload.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, correspondents, "Correspondents retrieved successfully")
}
