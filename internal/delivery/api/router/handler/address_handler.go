package handler

import (
	"net/http"
	"strconv"

	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandler handles address related HTTP requests
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
	}
}

// ListAddresses handles GET /api/addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	filter := entity.AddressFilter{
		City:    c.QueryParam("city"),
		State:   c.QueryParam("state"),
		Pincode: c.QueryParam("pincode"),
	}

	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// no customer can match a non-numeric id
			return response.Success(c, http.StatusOK, []*entity.Address{})
		}
		filter.CustomerID = &customerID
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// AddAddress handles POST /api/addresses/:customerId
func (h *AddressHandler) AddAddress(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input *usecase.AddressInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), customerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "Address added", address.ID)
}

// UpdateAddress handles PUT /api/addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateAddressInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	address, changed, err := h.addressUC.UpdateAddress(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !changed {
		return response.Message(c, http.StatusOK, "No changes", nil)
	}

	return response.Message(c, http.StatusOK, "Address updated", address)
}

// DeleteAddress handles DELETE /api/addresses/:id
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Address deleted", nil)
}
