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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for storefront and product handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// UpsertService creates or updates the caller's storefront.
func (h *CatalogHandler) UpsertService(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.UpsertServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid storefront input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = payload.UserID

	service, err := h.catalogUC.UpsertService(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Storefront saved successfully")
}

// MyService returns the caller's storefront.
func (h *CatalogHandler) MyService(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	service, err := h.catalogUC.MyService(c.Request().Context(), payload.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Storefront retrieved successfully")
}

// GetService returns a storefront by ID for public viewing.
func (h *CatalogHandler) GetService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	service, err := h.catalogUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Storefront retrieved successfully")
}

// ListServices pages through storefronts that have at least one product.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.catalogUC.ListServices(c.Request().Context(), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Storefronts retrieved successfully")
}

// ServiceCategories returns the distinct categories a storefront sells in.
func (h *CatalogHandler) ServiceCategories(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	categories, err := h.catalogUC.ServiceCategories(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// ServiceQR renders a shareable QR code PNG for a storefront.
func (h *CatalogHandler) ServiceQR(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	png, err := h.catalogUC.ServiceQR(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanServiceQR resolves scanned share-code data to its storefront.
func (h *CatalogHandler) ScanServiceQR(c echo.Context) error {
	var input *usecase.ScanServiceQRInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share code input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	service, err := h.catalogUC.ResolveServiceQR(c.Request().Context(), input.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Storefront retrieved successfully")
}

// NewProduct lists a product under the caller's storefront.
func (h *CatalogHandler) NewProduct(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.NewProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = payload.UserID

	product, err := h.catalogUC.NewProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product listed successfully")
}

// EditProduct replaces the mutable fields of one of the caller's listings.
func (h *CatalogHandler) EditProduct(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.EditProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = payload.UserID
	input.ProductID = productID

	product, err := h.catalogUC.EditProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes one of the caller's listings.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), payload.UserID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListProducts pages through the whole catalog.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved successfully")
}

// ListServiceProducts pages through one storefront's listings.
func (h *CatalogHandler) ListServiceProducts(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid storefront ID")
	}

	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.catalogUC.ListServiceProducts(c.Request().Context(), serviceID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved successfully")
}
