package http

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
)

// ── respondError ──────────────────────────────────────────────────────────────

func TestRespondError_MapeoDeCodigos(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", fmt.Errorf("%w: cantidad", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"conflicto", domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"no autorizado", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"desconocido", fmt.Errorf("se rompió algo"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := serveError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantCode)
		})
	}
}

// TestRespondError_StockInsuficiente verifica que el 409 de stock insuficiente
// expone el disponible, para que el cliente pueda reintentar con menos.
func TestRespondError_StockInsuficiente(t *testing.T) {
	err := &domain.InsufficientStockError{ItemID: "x", Available: 7, Requested: 20}

	status, body := serveError(t, err)

	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, "INSUFFICIENT_STOCK")
	assert.Contains(t, body, `"available":7`)
}

func serveError(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// ── parseTimeParam ────────────────────────────────────────────────────────────

func TestParseTimeParam_Vacio(t *testing.T) {
	got, err := parseTimeParam("", false)
	require.NoError(t, err)
	assert.Nil(t, got, "parámetro ausente devuelve nil, no error")
}

func TestParseTimeParam_RFC3339(t *testing.T) {
	got, err := parseTimeParam("2025-03-10T09:30:00Z", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), got.UTC())
}

func TestParseTimeParam_FechaSimple(t *testing.T) {
	got, err := parseTimeParam("2025-03-10", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 0, got.Hour())
}

// TestParseTimeParam_FinDeDia: un "hasta" con fecha simple debe cubrir el día
// completo para que el filtro sea inclusivo.
func TestParseTimeParam_FinDeDia(t *testing.T) {
	got, err := parseTimeParam("2025-03-10", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
}

func TestParseTimeParam_FormatoInvalido(t *testing.T) {
	_, err := parseTimeParam("10/03/2025", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
