package rest

import (
	"net/http"

	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/schema"
)

func rel(name string) string {
	return Namespace + ":" + name
}

// newDocument starts a top-level document with the link-relation namespace.
func (h *Handler) newDocument() hypermedia.Document {
	doc := hypermedia.New()
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	return doc
}

func addControlCreate(doc hypermedia.Document, resource, href, title string) {
	doc.AddControlWrite(rel("add-"+resource), href, http.MethodPost, title, schema.Describe(resource))
}

func addControlEdit(doc hypermedia.Document, resource, href, title string) {
	doc.AddControlWrite(rel("edit-"+resource), href, http.MethodPut, title, schema.Describe(resource))
}
