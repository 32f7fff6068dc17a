package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

func portionItem(portion domain.Portion) hypermedia.Document {
	doc := hypermedia.New()
	doc["id"] = portion.ID
	doc["name"] = portion.Name
	doc["calories"] = portion.Calories
	doc["density"] = portion.Density
	doc["alcohol"] = portion.Alcohol
	doc["carbohydrate"] = portion.Carbohydrate
	doc["protein"] = portion.Protein
	doc["fat"] = portion.Fat
	doc.AddControlSelf(portionURL(portion.ID))
	doc.AddControlCollection(portionsURL())
	return doc
}

func (h *Handler) handlePortionList(c echo.Context) error {
	portions, err := h.portion.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	items := make([]hypermedia.Document, 0, len(portions))
	for _, portion := range portions {
		items = append(items, portionItem(portion))
	}
	doc.SetItems(items)
	doc.AddControlSelf(portionsURL())
	addControlCreate(doc, domain.ResourcePortion, portionsURL(), "Creates a new Portion")
	doc.AddControl(rel("portions-all"), portionsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handlePortionGet(c echo.Context) error {
	id, err := pathParam(c, "portion")
	if err != nil {
		return h.respondError(c, err)
	}

	portion, err := h.portion.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	doc := portionItem(portion)
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	doc.AddControlProfile(h.profileURL(domain.ResourcePortion))
	doc.AddControlDelete(portionURL(id))
	addControlEdit(doc, domain.ResourcePortion, portionURL(id), "Edits a Portion")
	doc.AddControl(rel("portions-all"), portionsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handlePortionCreate(c echo.Context) error {
	var input usecase.PortionInput
	if err := h.readPayload(c, domain.ResourcePortion, &input); err != nil {
		return h.respondError(c, err)
	}

	portion, err := h.portion.Create(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return presenter.Created(c, h.absoluteURL(c, portionURL(portion.ID)))
}

func (h *Handler) handlePortionUpdate(c echo.Context) error {
	var input usecase.PortionInput
	if err := h.readPayload(c, domain.ResourcePortion, &input); err != nil {
		return h.respondError(c, err)
	}

	id, err := pathParam(c, "portion")
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.portion.Update(c.Request().Context(), id, input); err != nil {
		return h.respondError(c, err)
	}

	return presenter.NoContent(c)
}

// handlePortionDelete answers 409 while a meal still uses the portion.
func (h *Handler) handlePortionDelete(c echo.Context) error {
	id, err := pathParam(c, "portion")
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.portion.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.NoContent(c)
}
