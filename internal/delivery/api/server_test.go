package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"crm/config"
	"crm/internal/delivery/api/router"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/validation"
	"crm/internal/infra/persistence/sqldb"
	"crm/internal/infra/qrcode"
	"crm/internal/usecase/impl"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	client *resty.Client
	seed   func(t *testing.T) int
}

// newTestServer wires the full stack over a temp-file SQLite store and serves it with httptest.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SlowQueryThreshold = time.Second
	cfg.Database.SQLite = &config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "crm.sqlite"),
		BusyTimeout: time.Second,
	}

	db, err := sqldb.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, sqldb.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	txManager := sqldb.NewTransactionManager(db)
	customerRepo := sqldb.NewCustomerRepository(db)
	addressRepo := sqldb.NewAddressRepository(db)
	validator := validation.New()

	customerUC := impl.NewCustomerService(impl.CustomerServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		AddressRepo:  addressRepo,
		Validator:    validator,
		Logger:       logger,
	})
	addressUC := impl.NewAddressService(impl.AddressServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		AddressRepo:  addressRepo,
		Validator:    validator,
		Logger:       logger,
	})
	contactCardUC := impl.NewContactCardService(customerRepo, addressRepo, qrcode.NewQRCodeService(128, "L"))
	healthUC := impl.NewHealthService(sqldb.NewHealthRepository(db), logger)
	seedUC := impl.NewSeedService(txManager, logger)

	e := newEcho(cfg, logger, router.RouterParams{
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC:    customerUC,
			ContactCardUC: contactCardUC,
		}),
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC}),
		HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{HealthUC: healthUC}),
	})

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)

	return &testServer{
		client: resty.New().SetBaseURL(ts.URL),
		seed: func(t *testing.T) int {
			n, err := seedUC.Seed(context.Background())
			require.NoError(t, err)

			return n
		},
	}
}

func jsonBody(t *testing.T, resp *resty.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body(), &body), "body: %s", resp.String())

	return body
}

func TestServer_CustomerLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// create with an initial address
	resp, err := srv.client.R().
		SetBody(map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
			"phone":      "9998887777",
			"email":      "john@example.com",
			"address": map[string]any{
				"line1":   "123 Main",
				"city":    "Pune",
				"state":   "MH",
				"pincode": "411001",
			},
		}).
		Post("/api/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())

	created := jsonBody(t, resp)["data"].(map[string]any)
	id := int64(created["id"].(float64))
	require.Positive(t, id)
	customerPath := fmt.Sprintf("/api/customers/%d", id)

	// read back
	resp, err = srv.client.R().Get(customerPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	detail := jsonBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "John", detail["first_name"])
	assert.Equal(t, "Doe", detail["last_name"])
	assert.Equal(t, "john@example.com", detail["email"])
	addresses := detail["addresses"].([]any)
	require.Len(t, addresses, 1)
	assert.Equal(t, "India", addresses[0].(map[string]any)["country"])

	// partial update
	resp, err = srv.client.R().SetBody(map[string]any{"first_name": "Johnny"}).Put(customerPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	updated := jsonBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Johnny", updated["first_name"])
	assert.Equal(t, "Doe", updated["last_name"])
	assert.Equal(t, "9998887777", updated["phone"])

	// an empty email clears the stored one
	resp, err = srv.client.R().SetBody(map[string]any{"email": ""}).Put(customerPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Nil(t, jsonBody(t, resp)["data"].(map[string]any)["email"])

	resp, err = srv.client.R().Get(customerPath)
	require.NoError(t, err)
	assert.Nil(t, jsonBody(t, resp)["data"].(map[string]any)["email"])

	// not multi-address yet
	resp, err = srv.client.R().SetQueryParam("multiAddress", "true").Get("/api/customers")
	require.NoError(t, err)
	assert.NotContains(t, listedIDs(t, resp), id)

	// second address moves the customer into the multi-address listing
	resp, err = srv.client.R().
		SetBody(map[string]any{
			"line1":   "9 Station Road",
			"city":    "Mumbai",
			"state":   "MH",
			"pincode": "400001",
		}).
		Post(fmt.Sprintf("/api/addresses/%d", id))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.Equal(t, "Address added", jsonBody(t, resp)["message"])

	resp, err = srv.client.R().SetQueryParam("multiAddress", "true").Get("/api/customers")
	require.NoError(t, err)
	assert.Contains(t, listedIDs(t, resp), id)

	// delete cascades to the addresses
	resp, err = srv.client.R().Delete(customerPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Customer deleted. Removed 2 linked addresses.", jsonBody(t, resp)["message"])

	resp, err = srv.client.R().Get(customerPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = srv.client.R().SetQueryParam("customer_id", fmt.Sprint(id)).Get("/api/addresses")
	require.NoError(t, err)
	assert.Equal(t, []any{}, jsonBody(t, resp)["data"])
}

func listedIDs(t *testing.T, resp *resty.Response) []int64 {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	var ids []int64
	for _, row := range jsonBody(t, resp)["data"].([]any) {
		ids = append(ids, int64(row.(map[string]any)["id"].(float64)))
	}

	return ids
}

func TestServer_RejectsInvalidInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		body      map[string]any
		wantField string
	}{
		{
			name:      "short phone",
			body:      map[string]any{"first_name": "Asha", "last_name": "Rao", "phone": "12345"},
			wantField: "phone",
		},
		{
			name: "pincode with leading zero",
			body: map[string]any{
				"first_name": "Asha", "last_name": "Rao", "phone": "9123456789",
				"address": map[string]any{"line1": "1 Hill Rd", "city": "Ooty", "state": "TN", "pincode": "00001"},
			},
			wantField: "address.pincode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.client.R().SetBody(tt.body).Post("/api/customers")
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode())

			errBody := jsonBody(t, resp)["error"].(map[string]any)
			assert.Equal(t, "VALIDATION_ERROR", errBody["code"])

			var fields []string
			for _, d := range errBody["details"].([]any) {
				fields = append(fields, d.(map[string]any)["field"].(string))
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}

	// nothing was persisted
	resp, err := srv.client.R().Get("/api/customers")
	require.NoError(t, err)
	assert.Equal(t, float64(0), jsonBody(t, resp)["total"])

	resp, err = srv.client.R().Get("/api/customers/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "INVALID_ID", jsonBody(t, resp)["error"].(map[string]any)["code"])

	resp, err = srv.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"first_name":`).
		Post("/api/customers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "INVALID_INPUT", jsonBody(t, resp)["error"].(map[string]any)["code"])
}

func TestServer_PaginatesSeededCustomers(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, 6, srv.seed(t))
	require.Zero(t, srv.seed(t), "seeding twice must not duplicate customers")

	resp, err := srv.client.R().
		SetQueryParams(map[string]string{"page": "1", "pageSize": "5", "sortBy": "first_name", "sortOrder": "asc"}).
		Get("/api/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	body := jsonBody(t, resp)
	rows := body["data"].([]any)
	require.Len(t, rows, 5)
	assert.Equal(t, "Aarav", rows[0].(map[string]any)["first_name"])
	assert.GreaterOrEqual(t, body["total"].(float64), float64(6))
	assert.Equal(t, float64(2), body["totalPages"])

	resp, err = srv.client.R().
		SetQueryParams(map[string]string{"page": "4611686018427387904", "pageSize": "100"}).
		Get("/api/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []any{}, jsonBody(t, resp)["data"], "a page far past the end is empty")

	resp, err = srv.client.R().SetQueryParams(map[string]string{"city": "Pune"}).Get("/api/customers")
	require.NoError(t, err)
	assert.Equal(t, float64(1), jsonBody(t, resp)["total"])
}

func TestServer_HealthAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.client.R().SetHeader("X-Request-Id", "trace-123").Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "trace-123", resp.Header().Get("X-Request-Id"))

	body := jsonBody(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "trace-123", body["meta"].(map[string]any)["request_id"])

	resp, err = srv.client.R().Get("/health/db")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "healthy", jsonBody(t, resp)["status"])
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))

	resp, err = srv.client.R().Get("/api/unknown")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "NOT_FOUND", jsonBody(t, resp)["error"].(map[string]any)["code"])
}

func TestServer_ContactCardQR(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t)

	resp, err := srv.client.R().Get("/api/customers/1/qr")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), resp.Body()[:4])

	resp, err = srv.client.R().Get("/api/customers/999/qr")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}
