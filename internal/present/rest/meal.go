package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/hypermedia"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

func mealItem(meal domain.Meal) hypermedia.Document {
	doc := hypermedia.New()
	doc["id"] = meal.ID
	doc["name"] = meal.Name
	doc["servings"] = meal.Servings
	if meal.Description != nil {
		doc["description"] = *meal.Description
	}
	doc.AddControlSelf(mealURL(meal.ID))
	doc.AddControlCollection(mealsURL())
	return doc
}

func (h *Handler) handleMealList(c echo.Context) error {
	meals, err := h.meal.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	doc := h.newDocument()
	items := make([]hypermedia.Document, 0, len(meals))
	for _, meal := range meals {
		items = append(items, mealItem(meal))
	}
	doc.SetItems(items)
	doc.AddControlSelf(mealsURL())
	addControlCreate(doc, domain.ResourceMeal, mealsURL(), "Creates a new Meal")
	doc.AddControl(rel("meals-all"), mealsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handleMealGet(c echo.Context) error {
	id, err := pathParam(c, "meal")
	if err != nil {
		return h.respondError(c, err)
	}

	meal, err := h.meal.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	doc := mealItem(meal)
	doc.AddNamespace(Namespace, h.config.Hypermedia.LinkRelations)
	doc.AddControlProfile(h.profileURL(domain.ResourceMeal))
	doc.AddControlDelete(mealURL(id))
	addControlEdit(doc, domain.ResourceMeal, mealURL(id), "Edits a Meal")
	doc.AddControl(rel("mealportions"), mealPortionsURL(id))
	doc.AddControl(rel("meals-all"), mealsURL())

	return presenter.OK(c, doc)
}

func (h *Handler) handleMealCreate(c echo.Context) error {
	var input usecase.MealInput
	if err := h.readPayload(c, domain.ResourceMeal, &input); err != nil {
		return h.respondError(c, err)
	}

	meal, err := h.meal.Create(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return presenter.Created(c, h.absoluteURL(c, mealURL(meal.ID)))
}

func (h *Handler) handleMealUpdate(c echo.Context) error {
	var input usecase.MealInput
	if err := h.readPayload(c, domain.ResourceMeal, &input); err != nil {
		return h.respondError(c, err)
	}

	id, err := pathParam(c, "meal")
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.meal.Update(c.Request().Context(), id, input); err != nil {
		return h.respondError(c, err)
	}

	return presenter.NoContent(c)
}

func (h *Handler) handleMealDelete(c echo.Context) error {
	id, err := pathParam(c, "meal")
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.meal.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}
	return presenter.NoContent(c)
}
