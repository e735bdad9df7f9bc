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

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

// EngagementHandler holds dependencies for comment and favorite handlers.
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler.
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: params.EngagementUC,
		logger:       params.Logger,
	}
}

// PostComment writes a comment under a storefront.
func (h *EngagementHandler) PostComment(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.PostCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.PosterID = payload.UserID

	comment, err := h.engagementUC.PostComment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment posted successfully")
}

// DeleteComment removes one of the caller's comments.
func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	if err := h.engagementUC.DeleteComment(c.Request().Context(), payload.UserID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}

// ListComments pages through the comments under a storefront.
func (h *EngagementHandler) ListComments(c echo.Context) error {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.engagementUC.ListComments(c.Request().Context(), topicID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Comments retrieved successfully")
}

// SetFavorite adds or removes the caller's favorite mark on a storefront.
func (h *EngagementHandler) SetFavorite(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.FavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.UserID = payload.UserID

	like, err := h.engagementUC.SetFavorite(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, like, "Favorite updated successfully")
}

// FavoriteCount reports how many users favor a storefront.
func (h *EngagementHandler) FavoriteCount(c echo.Context) error {
	selectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	count, err := h.engagementUC.FavoriteCount(c.Request().Context(), selectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "Favorite count retrieved successfully")
}
