package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cartCookieName identifies the browsing session the cart belongs to.
const cartCookieName = "cart_session"

// OrderHandler holds dependencies for order and storefront handlers.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	cartUC    usecase.CartUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	orderUC usecase.OrderUsecase,
	cartUC usecase.CartUsecase,
	productUC usecase.ProductUsecase,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUC:   orderUC,
		cartUC:    cartUC,
		productUC: productUC,
		logger:    logger,
	}
}

// storefrontView is the make-order page: one page of products plus the
// session's current cart.
type storefrontView struct {
	Products   []*entity.Product `json:"products"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Cart       entity.Cart       `json:"cart"`
}

// Status handles the order detail view.
func (h *OrderHandler) Status(c echo.Context) error {
	custNo, orderNo, err := orderParams(c)
	if err != nil {
		return err
	}

	output, err := h.orderUC.Status(c.Request().Context(), custNo, orderNo)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, output)
	}

	return response.Success(c, http.StatusOK, output, "Order retrieved successfully")
}

// Pay handles marking the order as paid.
func (h *OrderHandler) Pay(c echo.Context) error {
	custNo, orderNo, err := orderParams(c)
	if err != nil {
		return err
	}

	if err := h.orderUC.MarkPaid(c.Request().Context(), custNo, orderNo); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, nil, fmt.Sprintf("Order %d paid", orderNo))
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/customers/%d/%d", custNo, orderNo))
}

// MakeOrder handles the storefront view. Opening the page without the cart
// marker starts a fresh cart; following pagination links keeps it.
func (h *OrderHandler) MakeOrder(c echo.Context) error {
	custNo, err := custNoParam(c)
	if err != nil {
		return err
	}

	sessionID := h.sessionID(c)
	if c.QueryParam("cart") == "" {
		h.cartUC.Clear(sessionID)
	}

	output, err := h.productUC.Storefront(c.Request().Context(), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	view := &storefrontView{
		Products:   output.Products,
		Page:       output.Page,
		TotalPages: output.TotalPages,
		Cart:       h.cartUC.View(sessionID),
	}

	if prefersJSON(c) {
		return c.JSON(http.StatusOK, view)
	}

	return response.Success(c, http.StatusOK, view, fmt.Sprintf("Storefront for customer %d", custNo))
}

// MakeOrderPost dispatches the storefront form: a submitted SKU adds to the
// cart, a checkout submission turns the cart into an order.
func (h *OrderHandler) MakeOrderPost(c echo.Context) error {
	custNo, err := custNoParam(c)
	if err != nil {
		return err
	}

	sessionID := h.sessionID(c)

	if sku := c.FormValue("sku"); sku != "" {
		return h.addToCart(c, sessionID, custNo, sku)
	}

	if c.FormValue("checkout") != "" {
		return h.checkout(c, sessionID, custNo)
	}

	return domainerrors.ErrValidationFailed.WithDetails("Either a product or a checkout must be submitted.")
}

func (h *OrderHandler) addToCart(c echo.Context, sessionID string, custNo int, sku string) error {
	qty, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Quantity is required to be numeric.")
	}

	if err := h.cartUC.Add(c.Request().Context(), sessionID, sku, qty); err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusOK, h.cartUC.View(sessionID), "Product added to cart")
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/customers/%d/make_order?cart=true", custNo))
}

func (h *OrderHandler) checkout(c echo.Context, sessionID string, custNo int) error {
	output, err := h.orderUC.Checkout(c.Request().Context(), sessionID, custNo)
	if err != nil {
		return errors.WithStack(err)
	}

	if prefersJSON(c) {
		return response.Success(c, http.StatusCreated, output, "Order placed successfully")
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/customers/%d/%d", custNo, output.Order.OrderNo))
}

// sessionID returns the cart session cookie, minting one when absent.
func (h *OrderHandler) sessionID(c echo.Context) string {
	cookie, err := c.Cookie(cartCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})

	return sessionID
}

// orderParams parses the :cust_no and :order_no path parameters.
func orderParams(c echo.Context) (int, int, error) {
	custNo, err := custNoParam(c)
	if err != nil {
		return 0, 0, err
	}

	orderNo, err := strconv.Atoi(c.Param("order_no"))
	if err != nil {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("Order number must be an integer.")
	}

	return custNo, orderNo, nil
}
