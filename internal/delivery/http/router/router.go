// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	SupplierHandler *handler.SupplierHandler
	OrderHandler    *handler.OrderHandler
	AccountHandler  *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	supplierHandler *handler.SupplierHandler
	orderHandler    *handler.OrderHandler
	accountHandler  *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		supplierHandler: params.SupplierHandler,
		orderHandler:    params.OrderHandler,
		accountHandler:  params.AccountHandler,
	}
}

// RegisterRoutes sets up all the routes for the application. Static path
// segments are registered alongside the :order_no parameter; echo matches
// static routes first, so make_order and profile never collide with it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/ping", handler.Ping)

	// Customer index doubles as the home page
	e.GET("/", r.customerHandler.List)
	e.GET("/customers", r.customerHandler.List)

	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("/register", r.customerHandler.RegisterForm)
		customerGroup.POST("/register", r.customerHandler.Register)
		customerGroup.GET("/:cust_no/profile", r.customerHandler.Profile)
		customerGroup.GET("/:cust_no/confirm_delete", r.customerHandler.ConfirmDelete)
		customerGroup.POST("/:cust_no/delete", r.customerHandler.Delete)
		customerGroup.GET("/:cust_no/make_order", r.orderHandler.MakeOrder)
		customerGroup.POST("/:cust_no/make_order", r.orderHandler.MakeOrderPost)
		customerGroup.GET("/:cust_no/:order_no", r.orderHandler.Status)
		customerGroup.POST("/:cust_no/:order_no", r.orderHandler.Pay)
	}

	e.GET("/products", r.productHandler.List)
	e.GET("/product/register", r.productHandler.RegisterForm)
	e.POST("/product/register", r.productHandler.Register)
	e.POST("/product/:sku/delete", r.productHandler.Delete)

	productGroup := e.Group("/products")
	{
		productGroup.GET("/:sku/edit", r.productHandler.EditForm)
		productGroup.POST("/:sku/edit", r.productHandler.Edit)
		productGroup.GET("/:sku/confirm_delete", r.productHandler.ConfirmDelete)
		productGroup.GET("/:sku/edit_supplier", r.supplierHandler.List)
		productGroup.POST("/:sku/edit_supplier", r.supplierHandler.Delete)
		productGroup.GET("/:sku/add_supplier", r.supplierHandler.AddForm)
		productGroup.POST("/:sku/add_supplier", r.supplierHandler.Add)
	}

	accountGroup := e.Group("/accounts")
	{
		accountGroup.GET("/:cust_no/update", r.accountHandler.UpdateForm)
		accountGroup.POST("/:cust_no/update", r.accountHandler.Update)
	}
}
