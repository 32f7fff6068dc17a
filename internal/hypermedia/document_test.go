package hypermedia

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddControlDefaultsToGet(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddControlSelf("/api/meals/oatmeal/")

	ctrl, ok := doc.Control("self")
	require.True(t, ok)
	assert.Equal(t, "/api/meals/oatmeal/", ctrl.Href)
	assert.Equal(t, http.MethodGet, ctrl.Method)
}

func TestAddControlOverwrites(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddControl("cameta:meals-all", "/old/")
	doc.AddControl("cameta:meals-all", "/api/meals/", WithTitle("All meals"))

	ctrl, ok := doc.Control("cameta:meals-all")
	require.True(t, ok)
	assert.Equal(t, "/api/meals/", ctrl.Href)
	assert.Equal(t, "All meals", ctrl.Title)
}

func TestDocumentMarshalsMason(t *testing.T) {
	t.Parallel()

	doc := New()
	doc["id"] = "oatmeal"
	doc.AddNamespace("cameta", "/api/link-relations/")
	doc.AddNamespace("cameta", "https://example.com/rels/")
	doc.AddControlSelf("/api/meals/oatmeal/")
	doc.AddControlDelete("/api/meals/oatmeal/")
	doc.AddControlWrite("cameta:edit-meal", "/api/meals/oatmeal/", http.MethodPut, "Edits a Meal",
		map[string]any{"type": "object"})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "oatmeal", got["id"])
	assert.Equal(t, map[string]any{"cameta": map[string]any{"name": "https://example.com/rels/"}}, got["@namespaces"])

	controls := got["@controls"].(map[string]any)
	assert.Len(t, controls, 3)
	assert.Equal(t, "DELETE", controls["delete"].(map[string]any)["method"])

	edit := controls["cameta:edit-meal"].(map[string]any)
	assert.Equal(t, "PUT", edit["method"])
	assert.Equal(t, "json", edit["encoding"])
	assert.Equal(t, map[string]any{"type": "object"}, edit["schema"])
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.SetItems(nil)
	for _, id := range []string{"c", "a", "b"} {
		item := New()
		item["id"] = id
		doc.AddItem(item)
	}

	items := doc.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0]["id"])
	assert.Equal(t, "a", items[1]["id"])
	assert.Equal(t, "b", items[2]["id"])
}

func TestEmptyItemsMarshalAsArray(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.SetItems(nil)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items": []}`, string(raw))
}

func TestAddError(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddError("Not found", "No meal with id oatmeal")
	doc.AddControlProfile("/profiles/error/")

	body, ok := doc.ErrorDetails()
	require.True(t, ok)
	assert.Equal(t, "Not found", body.Message)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"@error": {"@message": "Not found", "@messages": ["No meal with id oatmeal"]},
		"@controls": {"profile": {"href": "/profiles/error/", "method": "GET"}}
	}`, string(raw))
}
