package avatars_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everkeep/legacy-backend/internal/features/avatars"
	"github.com/everkeep/legacy-backend/internal/model"
	"github.com/everkeep/legacy-backend/internal/store"
)

func newApp(t *testing.T, seed []model.Avatar) *fiber.App {
	t.Helper()
	app := fiber.New()
	avatars.New(store.NewAvatarStore(seed, store.Options{})).RegisterRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestAvatarCRUDRoundTrip(t *testing.T) {
	app := newApp(t, nil)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/avatars", fiber.Map{
		"name":                 "Margaret Chen",
		"completionPercentage": 25,
		"homeLevel":            1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Avatar
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Margaret Chen", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	resp, raw = doJSON(t, app, http.MethodGet, "/api/avatars/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Avatar
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created.Name, got.Name)

	resp, raw = doJSON(t, app, http.MethodPut, "/api/avatars/1", fiber.Map{"completionPercentage": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Avatar
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, 50, updated.CompletionPercentage)
	assert.Equal(t, "Margaret Chen", updated.Name, "fields missing from the patch stay put")

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/avatars/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/avatars/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAvatarNonNumericIDReadsAsNotFound(t *testing.T) {
	app := newApp(t, nil)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/avatars/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Error)
	assert.Equal(t, "avatar with id abc not found", envelope.Message)
}

func TestAvatarListingNewestFirst(t *testing.T) {
	app := newApp(t, nil)
	doJSON(t, app, http.MethodPost, "/api/avatars", fiber.Map{"name": "first"})
	doJSON(t, app, http.MethodPost, "/api/avatars", fiber.Map{"name": "second"})

	resp, raw := doJSON(t, app, http.MethodGet, "/api/avatars", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []model.Avatar
	require.NoError(t, json.Unmarshal(raw, &all))
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Name)
}
