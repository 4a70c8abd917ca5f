package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated product catalog.
func (h *ProductHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, output)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// RegisterForm handles the registration form view.
func (h *ProductHandler) RegisterForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{
		"fields": {"sku", "name", "description", "price", "ean"},
	}, "Product registration form")
}

// Register handles the product registration request.
func (h *ProductHandler) Register(c echo.Context) error {
	var input usecase.RegisterProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusCreated, product, "Product registered successfully")
	}

	return c.Redirect(http.StatusSeeOther, "/products")
}

// EditForm handles the edit view: the current product record.
func (h *ProductHandler) EditForm(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, product)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Edit handles updating the product's description and/or price.
func (h *ProductHandler) Edit(c echo.Context) error {
	sku := c.Param("sku")

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.uc.Update(c.Request().Context(), sku, &input); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, nil, "Product updated successfully")
	}

	return c.Redirect(http.StatusSeeOther, "/products")
}

// ConfirmDelete handles the delete preview: the dependent rows a cascading
// delete of the product would remove, without deleting anything.
func (h *ProductHandler) ConfirmDelete(c echo.Context) error {
	preview, err := h.uc.DeletePreview(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, preview)
	}

	return response.Success(c, http.StatusOK, preview, "Delete preview generated")
}

// Delete handles the confirmed cascading delete of the product.
func (h *ProductHandler) Delete(c echo.Context) error {
	sku := c.Param("sku")

	if err := h.uc.Delete(c.Request().Context(), sku); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, nil, fmt.Sprintf("Product %s deleted", sku))
	}

	return c.Redirect(http.StatusSeeOther, "/products")
}
