package votes_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"gradevault/core/middleware/auth"
	"gradevault/feature/votes"
	"gradevault/feature/votes/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGuard stands in for the auth middleware, injecting a fixed owner.
func stubGuard(ownerID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsUserID, ownerID)
		return c.Next()
	}
}

func newVotesApp(t *testing.T) (*fiber.App, *votes.Store) {
	t.Helper()
	db := newTestDB(t)
	feature := votes.NewFeature(db, zap.NewNop(), stubGuard("owner-1"))

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, feature.Store()
}

func TestHandleCreate(t *testing.T) {
	app, store := newVotesApp(t)

	payload := `{"label":"Analysis I","value":28,"subject":"math","examType":"written","createdAt":"2024-05-01T10:00:00Z"}`
	req := httptest.NewRequest("POST", "/api/votes", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Vote models.Vote `json:"vote"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Vote.ID)
	assert.NotEmpty(t, body.Vote.LogicalID)
	assert.Equal(t, "owner-1", body.Vote.OwnerID)

	list, err := store.ListByOwner(req.Context(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestHandleCreate_MissingFields(t *testing.T) {
	app, _ := newVotesApp(t)

	// No value.
	payload := `{"label":"Analysis I","subject":"math","examType":"written","createdAt":"2024-05-01T10:00:00Z"}`
	req := httptest.NewRequest("POST", "/api/votes", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, store := newVotesApp(t)
	seedVote(t, store, "owner-1", "a", 27)
	seedVote(t, store, "owner-2", "b", 30)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/votes", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Vote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].LogicalID)
}

func TestHandleList_Empty(t *testing.T) {
	app, _ := newVotesApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/votes", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Vote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestHandleUpdate(t *testing.T) {
	app, store := newVotesApp(t)
	v := seedVote(t, store, "owner-1", "a", 18)

	payload := `{"label":"Analysis I","value":30,"subject":"math","examType":"written","createdAt":"2024-05-01T10:00:00Z"}`
	req := httptest.NewRequest("PUT", "/api/votes/"+v.ID, bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := store.Get(req.Context(), "owner-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(30), got.Value)
}

func TestHandleUpdate_NotOwned(t *testing.T) {
	app, store := newVotesApp(t)
	v := seedVote(t, store, "owner-2", "a", 18)

	payload := `{"label":"x","value":30,"subject":"s","examType":"e","createdAt":"2024-05-01T10:00:00Z"}`
	req := httptest.NewRequest("PUT", "/api/votes/"+v.ID, bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, store := newVotesApp(t)
	v := seedVote(t, store, "owner-1", "a", 18)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/votes/"+v.ID, nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/votes/"+v.ID, nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
