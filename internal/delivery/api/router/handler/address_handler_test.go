package handler

import (
	"net/http"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressHandler(t *testing.T) (*AddressHandler, *mockUsecase.MockAddressUsecase) {
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	return NewAddressHandler(AddressHandlerParams{AddressUC: addressUC}), addressUC
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	t.Run("passes exact filters", func(t *testing.T) {
		handler, addressUC := createTestAddressHandler(t)
		customerID := int64(3)
		addressUC.EXPECT().
			ListAddresses(mock.Anything, entity.AddressFilter{CustomerID: &customerID, City: "Pune"}).
			Return([]*entity.Address{{ID: 1, CustomerID: 3, City: "Pune"}}, nil).
			Once()

		c, rec := newTestContext(http.MethodGet, "/api/addresses?customer_id=3&city=Pune", "")

		require.NoError(t, handler.ListAddresses(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["data"], 1)
	})

	t.Run("non-numeric customer id matches nothing", func(t *testing.T) {
		handler, _ := createTestAddressHandler(t)

		c, rec := newTestContext(http.MethodGet, "/api/addresses?customer_id=abc", "")

		require.NoError(t, handler.ListAddresses(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{}, decodeBody(t, rec)["data"])
	})
}

func TestAddressHandler_AddAddress(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().
			AddAddress(mock.Anything, int64(2), mock.MatchedBy(func(in *usecase.AddressInput) bool {
				return in != nil && in.IsPrimary && in.Pincode == "411001"
			})).
			Return(&entity.Address{ID: 9, CustomerID: 2}, nil).
			Once()

		c, rec := newTestContext(http.MethodPost, "/api/addresses/2",
			`{"line1":"1 FC Road","city":"Pune","state":"Maharashtra","pincode":"411001","is_primary":true}`,
			"customerId", "2")

		require.NoError(t, handler.AddAddress(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Address added", body["message"])
		assert.Equal(t, float64(9), body["id"])
	})

	t.Run("unknown customer", func(t *testing.T) {
		handler, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().AddAddress(mock.Anything, int64(404), mock.Anything).
			Return(nil, domainerrors.ErrCustomerNotFound).Once()

		c, rec := newTestContext(http.MethodPost, "/api/addresses/404", `{"line1":"x"}`, "customerId", "404")

		require.NoError(t, handler.AddAddress(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CUSTOMER_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		handler, _ := createTestAddressHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/addresses/0", `{}`, "customerId", "0")

		require.NoError(t, handler.AddAddress(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", errorCode(t, rec))
	})
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		handler, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().UpdateAddress(mock.Anything, int64(5), mock.Anything).
			Return(&entity.Address{ID: 5, City: "Mumbai"}, true, nil).Once()

		c, rec := newTestContext(http.MethodPut, "/api/addresses/5", `{"city":"Mumbai"}`, "id", "5")

		require.NoError(t, handler.UpdateAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Address updated", body["message"])
		assert.Equal(t, "Mumbai", body["data"].(map[string]any)["city"])
	})

	t.Run("no changes", func(t *testing.T) {
		handler, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().UpdateAddress(mock.Anything, int64(5), mock.Anything).
			Return(&entity.Address{ID: 5}, false, nil).Once()

		c, rec := newTestContext(http.MethodPut, "/api/addresses/5", `{}`, "id", "5")

		require.NoError(t, handler.UpdateAddress(c))
		assert.Equal(t, "No changes", decodeBody(t, rec)["message"])
	})
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	handler, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().DeleteAddress(mock.Anything, int64(8)).Return(domainerrors.ErrAddressNotFound).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/addresses/8", "", "id", "8")

	require.NoError(t, handler.DeleteAddress(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", errorCode(t, rec))
}
