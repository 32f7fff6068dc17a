package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

func personItem(person domain.Person) hypermedia.Document {
	doc := hypermedia.New()
	doc["id"] = person.ID
	doc.AddControlSelf(personURL(person.ID))
	doc.AddControlCollection(personsURL())
	return doc
}

func (h *Handler) handlePersonList(c echo.Context) error {
	persons, err := h.person.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	items := make([]hypermedia.Document, 0, len(persons))
	for _, person := range persons {
		items = append(items, personItem(person))
	}
	doc.SetItems(items)
	doc.AddControlSelf(personsURL())
	addControlCreate(doc, domain.ResourcePerson, personsURL(), "Creates a new Person")
	doc.AddControl(rel("persons-all"), personsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handlePersonGet(c echo.Context) error {
	id, err := pathParam(c, "person")
	if err != nil {
		return h.respondError(c, err)
	}

	person, err := h.person.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	doc := personItem(person)
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	doc.AddControlProfile(h.profileURL(domain.ResourcePerson))
	doc.AddControlDelete(personURL(id))
	doc.AddControl(rel("mealrecords-by-person"), personMealRecordsURL(id))
	doc.AddControl(rel("persons-all"), personsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handlePersonCreate(c echo.Context) error {
	var input usecase.PersonInput
	if err := h.readPayload(c, domain.ResourcePerson, &input); err != nil {
		return h.respondError(c, err)
	}

	person, err := h.person.Create(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return presenter.Created(c, h.absoluteURL(c, personURL(person.ID)))
}

func (h *Handler) handlePersonDelete(c echo.Context) error {
	id, err := pathParam(c, "person")
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.person.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.NoContent(c)
}

// handlePersonMealRecords lists the records of one person.
func (h *Handler) handlePersonMealRecords(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathParam(c, "person")
	if err != nil {
		return h.respondError(c, err)
	}

	if _, err := h.person.Get(ctx, id); err != nil {
		return h.respondError(c, err)
	}

	records, err := h.mealRecord.ListByPerson(ctx, id)
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	doc.SetItems(h.mealRecordItems(records))
	doc.AddControlSelf(personMealRecordsURL(id))
	doc.AddControl("up", personURL(id))
	addControlCreate(doc, domain.ResourceMealRecord, mealRecordsURL(), "Creates a new MealRecord")
	doc.AddControl(rel("mealrecords-all"), mealRecordsURL())

	return presenter.OK(c, doc)
}
