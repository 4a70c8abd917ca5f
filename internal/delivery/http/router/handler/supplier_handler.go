package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for supplier-related handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated supplier index of one SKU.
func (h *SupplierHandler) List(c echo.Context) error {
	output, err := h.uc.ListBySKU(c.Request().Context(), c.Param("sku"), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, output)
	}

	return response.Success(c, http.StatusOK, output, "Suppliers retrieved successfully")
}

// AddForm handles the supplier registration form view.
func (h *SupplierHandler) AddForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{
		"fields": {"name", "tin", "address"},
	}, "Supplier registration form")
}

// Add handles the supplier registration request.
func (h *SupplierHandler) Add(c echo.Context) error {
	sku := c.Param("sku")

	var input usecase.RegisterSupplierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	supplier, err := h.uc.Register(c.Request().Context(), sku, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusCreated, supplier, "Supplier registered successfully")
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/products/%s/edit_supplier", sku))
}

// Delete handles the supplier delete request. Deletes with dependent
// delivery rows must carry the confirmed form flag; otherwise the dependent
// addresses are returned and nothing is removed.
func (h *SupplierHandler) Delete(c echo.Context) error {
	sku := c.Param("sku")

	tin := c.FormValue("tin")
	if tin == "" {
		return domainerrors.ErrValidationFailed.WithDetails("TIN is required.")
	}
	confirmed := c.FormValue("confirmed") != ""

	output, err := h.uc.Delete(c.Request().Context(), tin, confirmed)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.RequiresConfirmation {
		return response.Success(c, http.StatusOK, output, "Supplier has dependent deliveries; confirmation required")
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, output, fmt.Sprintf("Supplier %s deleted", tin))
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/products/%s/edit_supplier", sku))
}
