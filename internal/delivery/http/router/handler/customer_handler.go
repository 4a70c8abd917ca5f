package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated customer index.
func (h *CustomerHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, output)
	}

	return response.Success(c, http.StatusOK, output, "Customers retrieved successfully")
}

// RegisterForm handles the registration form view.
func (h *CustomerHandler) RegisterForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{
		"fields": {"name", "email", "phone", "address"},
	}, "Customer registration form")
}

// Register handles the customer registration request.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusCreated, customer, "Customer registered successfully")
	}

	return c.Redirect(http.StatusSeeOther, "/customers")
}

// Profile handles the customer detail view.
func (h *CustomerHandler) Profile(c echo.Context) error {
	custNo, err := custNoParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Profile(c.Request().Context(), custNo)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, output)
	}

	return response.Success(c, http.StatusOK, output, "Customer profile retrieved successfully")
}

// ConfirmDelete handles the delete preview: the dependent rows a cascading
// delete of the customer would remove, without deleting anything.
func (h *CustomerHandler) ConfirmDelete(c echo.Context) error {
	custNo, err := custNoParam(c)
	if err != nil {
		return err
	}

	preview, err := h.uc.DeletePreview(c.Request().Context(), custNo)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, preview)
	}

	return response.Success(c, http.StatusOK, preview, "Delete preview generated")
}

// Delete handles the confirmed cascading delete of the customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	custNo, err := custNoParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), custNo); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, nil, fmt.Sprintf("Customer %d deleted", custNo))
	}

	return c.Redirect(http.StatusSeeOther, "/customers")
}

// custNoParam parses the :cust_no path parameter.
func custNoParam(c echo.Context) (int, error) {
	custNo, err := strconv.Atoi(c.Param("cust_no"))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Customer number must be an integer.")
	}

	return custNo, nil
}
