// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AddressHandler  *handler.AddressHandler
	HealthHandler   *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	addressHandler  *handler.AddressHandler
	healthHandler   *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		addressHandler:  params.AddressHandler,
		healthHandler:   params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/health/db", r.healthHandler.DatabaseHealthCheck)

	api := e.Group("/api")

	customersGroup := api.Group("/customers")
	{
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
		customersGroup.GET("/:id/qr", r.customerHandler.GetContactCardQR)
	}

	// POST takes the owning customer's id, PUT and DELETE the address id
	addressesGroup := api.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("/:customerId", r.addressHandler.AddAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}
