package handler

import (
	"fmt"
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandler handles customer related HTTP requests
type CustomerHandler struct {
	customerUC    usecase.CustomerUsecase
	contactCardUC usecase.ContactCardUsecase
}

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC    usecase.CustomerUsecase
	ContactCardUC usecase.ContactCardUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC:    params.CustomerUC,
		contactCardUC: params.ContactCardUC,
	}
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var input usecase.CreateCustomerInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, "Customer created successfully", customer)
}

// GetCustomer handles GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entity.NewCustomerDetail(customer))
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	var raw entity.RawCustomerListParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &raw); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	page, err := h.customerUC.ListCustomers(c.Request().Context(), entity.ParseCustomerListQuery(raw))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page.Customers, page.Page, page.PageSize, page.Total, page.TotalPages)
}

// UpdateCustomer handles PUT /api/customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateCustomerInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, changed, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !changed {
		return response.Message(c, http.StatusOK, "No changes", nil)
	}

	return response.Message(c, http.StatusOK, "Customer updated successfully", customer)
}

// DeleteCustomer handles DELETE /api/customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	removed, err := h.customerUC.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, fmt.Sprintf("Customer deleted. Removed %d linked addresses.", removed), nil)
}

// GetContactCardQR handles GET /api/customers/:id/qr
func (h *CustomerHandler) GetContactCardQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.contactCardUC.CustomerQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
