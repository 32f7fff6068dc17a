// Package hypermedia builds Mason documents: plain JSON objects with
// "@namespaces", "@controls" and "@error" meta properties.
package hypermedia

import (
	"net/http"

	"github.com/tapi-calorie/tapi/internal/utils"
)

// MediaType is the content type of every response body.
const MediaType = "application/vnd.mason+json"

const (
	keyNamespaces = "@namespaces"
	keyControls   = "@controls"
	keyError      = "@error"
	keyItems      = "items"
)

// Control describes a possible next request.
type Control struct {
	Href     string `json:"href"`
	Method   string `json:"method,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Title    string `json:"title,omitempty"`
	Schema   any    `json:"schema,omitempty"`
}

type ControlOption func(*Control)

func WithMethod(method string) ControlOption {
	return func(c *Control) { c.Method = method }
}

func WithEncoding(encoding string) ControlOption {
	return func(c *Control) { c.Encoding = encoding }
}

func WithTitle(title string) ControlOption {
	return func(c *Control) { c.Title = title }
}

func WithSchema(schema any) ControlOption {
	return func(c *Control) { c.Schema = schema }
}

type Namespace struct {
	Name string `json:"name"`
}

type ErrorBody struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages,omitempty"`
}

// Document is a response body under construction. Entity attributes are
// set directly on the map.
type Document map[string]any

func New() Document {
	return Document{}
}

// AddNamespace declares a link-relation namespace. A repeated prefix overwrites.
func (d Document) AddNamespace(prefix, uri string) {
	ns, ok := d[keyNamespaces].(utils.OrderedKVMap[Namespace])
	if !ok {
		ns = utils.OrderedKVMap[Namespace]{}
		d[keyNamespaces] = ns
	}
	ns.Set(prefix, Namespace{Name: uri})
}

// AddControl registers a control. The method defaults to GET; a repeated
// name overwrites the earlier control.
func (d Document) AddControl(name, href string, opts ...ControlOption) {
	ctrl := Control{Href: href, Method: http.MethodGet}
	for _, opt := range opts {
		opt(&ctrl)
	}
	d.controls().Set(name, ctrl)
}

func (d Document) AddControlSelf(href string) {
	d.AddControl("self", href)
}

func (d Document) AddControlCollection(href string) {
	d.AddControl("collection", href)
}

func (d Document) AddControlProfile(href string) {
	d.AddControl("profile", href)
}

func (d Document) AddControlDelete(href string) {
	d.AddControl("delete", href,
		WithMethod(http.MethodDelete),
		WithTitle("Delete this resource"),
	)
}

// AddControlWrite adds a control that submits a JSON body described by schema.
func (d Document) AddControlWrite(name, href, method, title string, schema any) {
	d.AddControl(name, href,
		WithMethod(method),
		WithEncoding("json"),
		WithTitle(title),
		WithSchema(schema),
	)
}

// AddError turns the document into an error document.
func (d Document) AddError(title string, details ...string) {
	d[keyError] = ErrorBody{Message: title, Messages: details}
}

// AddItem appends an entry to the "items" list.
func (d Document) AddItem(item Document) {
	items, _ := d[keyItems].([]Document)
	d[keyItems] = append(items, item)
}

// SetItems makes sure "items" is present, even when the collection is empty.
func (d Document) SetItems(items []Document) {
	if items == nil {
		items = []Document{}
	}
	d[keyItems] = items
}

func (d Document) Control(name string) (Control, bool) {
	cs, ok := d[keyControls].(utils.OrderedKVMap[Control])
	if !ok {
		return Control{}, false
	}
	return cs.Get(name)
}

func (d Document) Items() []Document {
	items, _ := d[keyItems].([]Document)
	return items
}

func (d Document) ErrorDetails() (ErrorBody, bool) {
	body, ok := d[keyError].(ErrorBody)
	return body, ok
}

func (d Document) controls() utils.OrderedKVMap[Control] {
	cs, ok := d[keyControls].(utils.OrderedKVMap[Control])
	if !ok {
		cs = utils.OrderedKVMap[Control]{}
		d[keyControls] = cs
	}
	return cs
}
