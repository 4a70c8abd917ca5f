package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateForm handles the balance form view: the current account record.
func (h *AccountHandler) UpdateForm(c echo.Context) error {
	accountNumber, err := custNoParam(c)
	if err != nil {
		return err
	}

	account, err := h.uc.Get(c.Request().Context(), accountNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, account)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// Update handles replacing the account's balance.
func (h *AccountHandler) Update(c echo.Context) error {
	accountNumber, err := custNoParam(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateBalanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid balance input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateBalance(c.Request().Context(), accountNumber, &input); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, nil, "Balance updated successfully")
	}

	return c.Redirect(http.StatusSeeOther, "/customers")
}
