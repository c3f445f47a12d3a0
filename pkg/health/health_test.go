package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyEndpoint(t *testing.T) {
	h := New()

	t.Run("not ready before SetReady", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("ready after SetReady", func(t *testing.T) {
		h.SetReady(true)
		rec := httptest.NewRecorder()
		h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp statusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("failing check reported", func(t *testing.T) {
		h.AddCheck("storage", func(context.Context) error {
			return errors.New("disk full")
		})
		rec := httptest.NewRecorder()
		h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp statusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "disk full", resp.Checks["storage"])
	})
}

func TestLiveEndpoint(t *testing.T) {
	h := New()
	rec := httptest.NewRecorder()
	h.LiveEndpoint(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDirWritableCheck(t *testing.T) {
	t.Run("writable dir passes", func(t *testing.T) {
		check := DirWritableCheck(t.TempDir())
		assert.NoError(t, check(context.Background()))
	})

	t.Run("missing dir fails", func(t *testing.T) {
		check := DirWritableCheck("/nonexistent/pos-data")
		assert.Error(t, check(context.Background()))
	})
}
