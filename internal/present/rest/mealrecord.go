package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

// timestampFormat renders record timestamps in a form the schema accepts back.
const timestampFormat = "2006-01-02T15:04:05.000000Z07:00"

func (h *Handler) mealRecordHref(key domain.MealRecordKey) string {
	return mealRecordURL(key.MealID, h.mealRecordCodec.Encode(key))
}

func (h *Handler) mealRecordItem(mr domain.MealRecord) hypermedia.Document {
	doc := hypermedia.New()
	doc["person_id"] = mr.PersonID
	doc["meal_id"] = mr.MealID
	doc["timestamp"] = mr.Timestamp.UTC().Format(timestampFormat)
	doc["amount"] = mr.Amount
	doc.AddControlSelf(h.mealRecordHref(mr.Key()))
	doc.AddControlCollection(mealRecordsURL())
	return doc
}

func (h *Handler) mealRecordItems(records []domain.MealRecord) []hypermedia.Document {
	items := make([]hypermedia.Document, 0, len(records))
	for _, mr := range records {
		items = append(items, h.mealRecordItem(mr))
	}
	return items
}

func (h *Handler) decodeMealRecord(c echo.Context) (domain.MealRecordKey, error) {
	mealID, raw, err := handleParams(c)
	if err != nil {
		return domain.MealRecordKey{}, err
	}
	return h.mealRecordCodec.Decode(mealID, raw)
}

func (h *Handler) handleMealRecordList(c echo.Context) error {
	records, err := h.mealRecord.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	doc.SetItems(h.mealRecordItems(records))
	doc.AddControlSelf(mealRecordsURL())
	addControlCreate(doc, domain.ResourceMealRecord, mealRecordsURL(), "Creates a new MealRecord")
	doc.AddControl(rel("mealrecords-all"), mealRecordsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handleMealRecordGet(c echo.Context) error {
	key, err := h.decodeMealRecord(c)
	if err != nil {
		return h.respondError(c, err)
	}

	mr, err := h.mealRecord.Get(c.Request().Context(), key)
	if err != nil {
		return h.respondError(c, err)
	}

	href := h.mealRecordHref(mr.Key())
	doc := h.mealRecordItem(mr)
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	doc.AddControlProfile(h.profileURL(domain.ResourceMealRecord))
	doc.AddControlDelete(href)
	addControlEdit(doc, domain.ResourceMealRecord, href, "Edits a MealRecord")
	doc.AddControl(rel("person"), personURL(mr.PersonID))
	doc.AddControl(rel("meal"), mealURL(mr.MealID))
	doc.AddControl(rel("mealrecords-by-person"), personMealRecordsURL(mr.PersonID))
	doc.AddControl(rel("mealrecords-all"), mealRecordsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handleMealRecordCreate(c echo.Context) error {
	var input usecase.MealRecordInput
	if err := h.readPayload(c, domain.ResourceMealRecord, &input); err != nil {
		return h.respondError(c, err)
	}

	mr, err := h.mealRecord.Create(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return presenter.Created(c, h.absoluteURL(c, h.mealRecordHref(mr.Key())))
}

func (h *Handler) handleMealRecordUpdate(c echo.Context) error {
	var input usecase.MealRecordInput
	if err := h.readPayload(c, domain.ResourceMealRecord, &input); err != nil {
		return h.respondError(c, err)
	}

	key, err := h.decodeMealRecord(c)
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.mealRecord.Update(c.Request().Context(), key, input); err != nil {
		return h.respondError(c, err)
	}

	return presenter.NoContent(c)
}

func (h *Handler) handleMealRecordDelete(c echo.Context) error {
	key, err := h.decodeMealRecord(c)
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.mealRecord.Delete(c.Request().Context(), key); err != nil {
		return h.respondError(c, err)
	}
	return presenter.NoContent(c)
}
