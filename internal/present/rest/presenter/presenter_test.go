package presenter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapi-calorie/tapi/internal/hypermedia"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOKSetsETagAndHonoursIfNoneMatch(t *testing.T) {
	doc := hypermedia.New()
	doc["id"] = "alice"

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/persons/alice/", nil))
	require.NoError(t, OK(c, doc))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hypermedia.MediaType, rec.Header().Get(echo.HeaderContentType))

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/persons/alice/", nil)
	req.Header.Set("If-None-Match", `"other", `+etag)
	c, rec = newContext(req)
	require.NoError(t, OK(c, doc))
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestErrorDocument(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/meals/nope/", nil))
	require.NoError(t, Error(c, http.StatusNotFound, "/profiles/error/", "Not found", "No meal nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, hypermedia.MediaType, rec.Header().Get(echo.HeaderContentType))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/meals/nope/", body["resource_url"])

	errBody := body["@error"].(map[string]any)
	assert.Equal(t, "Not found", errBody["@message"])
	assert.Equal(t, []any{"No meal nope"}, errBody["@messages"])

	profile := body["@controls"].(map[string]any)["profile"].(map[string]any)
	assert.Equal(t, "/profiles/error/", profile["href"])
}

func TestCreatedSetsLocation(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/persons/", nil))
	require.NoError(t, Created(c, "http://example.com/api/persons/alice/"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://example.com/api/persons/alice/", rec.Header().Get(echo.HeaderLocation))
}

func TestInternalErrorUsesMasonMediaType(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/meals/", nil))
	require.NoError(t, InternalError(c, errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, hypermedia.MediaType, rec.Header().Get(echo.HeaderContentType))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/meals/", body["resource_url"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
