package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

func (h *Handler) mealPortionItem(mp domain.MealPortion) hypermedia.Document {
	doc := hypermedia.New()
	doc["meal_id"] = mp.MealID
	doc["portion_id"] = mp.PortionID
	doc["weight_per_serving"] = mp.WeightPerServing
	doc.AddControlSelf(mealPortionURL(mp.MealID, h.mealPortionCodec.Encode(mp.Key())))
	doc.AddControlCollection(mealPortionsURL(mp.MealID))
	return doc
}

// decodeMealPortion reads the key from the :meal and :handle parameters.
func (h *Handler) decodeMealPortion(c echo.Context) (domain.MealPortionKey, error) {
	mealID, raw, err := handleParams(c)
	if err != nil {
		return domain.MealPortionKey{}, err
	}
	return h.mealPortionCodec.Decode(mealID, raw)
}

// handleMealPortionList lists the portions of one meal.
func (h *Handler) handleMealPortionList(c echo.Context) error {
	ctx := c.Request().Context()
	mealID, err := pathParam(c, "meal")
	if err != nil {
		return h.respondError(c, err)
	}

	if _, err := h.meal.Get(ctx, mealID); err != nil {
		return h.respondError(c, err)
	}

	mealPortions, err := h.mealPortion.ListByMeal(ctx, mealID)
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	items := make([]hypermedia.Document, 0, len(mealPortions))
	for _, mp := range mealPortions {
		items = append(items, h.mealPortionItem(mp))
	}
	doc.SetItems(items)
	doc.AddControlSelf(mealPortionsURL(mealID))
	doc.AddControl("up", mealURL(mealID))
	addControlCreate(doc, domain.ResourceMealPortion, mealPortionsURL(mealID), "Adds a Portion to this Meal")

	return presenter.OK(c, doc)
}

func (h *Handler) handleMealPortionGet(c echo.Context) error {
	key, err := h.decodeMealPortion(c)
	if err != nil {
		return h.respondError(c, err)
	}

	mp, err := h.mealPortion.Get(c.Request().Context(), key)
	if err != nil {
		return h.respondError(c, err)
	}

	href := mealPortionURL(key.MealID, h.mealPortionCodec.Encode(key))
	doc := h.mealPortionItem(mp)
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	doc.AddControlProfile(h.profileURL(domain.ResourceMealPortion))
	doc.AddControlDelete(href)
	addControlEdit(doc, domain.ResourceMealPortion, href, "Edits a MealPortion")
	doc.AddControl("up", mealURL(key.MealID))
	doc.AddControl(rel("meal"), mealURL(key.MealID))
	doc.AddControl(rel("portion"), portionURL(key.PortionID))

	return presenter.OK(c, doc)
}

// handleMealPortionCreate adds a portion to the meal named in the path. The
// path wins over meal_id in the body.
func (h *Handler) handleMealPortionCreate(c echo.Context) error {
	var input usecase.MealPortionInput
	if err := h.readPayload(c, domain.ResourceMealPortion, &input); err != nil {
		return h.respondError(c, err)
	}

	mealID, err := pathParam(c, "meal")
	if err != nil {
		return h.respondError(c, err)
	}

	mp, err := h.mealPortion.Create(c.Request().Context(), mealID, input)
	if err != nil {
		return h.respondError(c, err)
	}

	location := mealPortionURL(mp.MealID, h.mealPortionCodec.Encode(mp.Key()))
	return presenter.Created(c, h.absoluteURL(c, location))
}

func (h *Handler) handleMealPortionUpdate(c echo.Context) error {
	var input usecase.MealPortionInput
	if err := h.readPayload(c, domain.ResourceMealPortion, &input); err != nil {
		return h.respondError(c, err)
	}

	key, err := h.decodeMealPortion(c)
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.mealPortion.Update(c.Request().Context(), key, input); err != nil {
		return h.respondError(c, err)
	}

	return presenter.NoContent(c)
}

func (h *Handler) handleMealPortionDelete(c echo.Context) error {
	key, err := h.decodeMealPortion(c)
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.mealPortion.Delete(c.Request().Context(), key); err != nil {
		return h.respondError(c, err)
	}
	return presenter.NoContent(c)
}
