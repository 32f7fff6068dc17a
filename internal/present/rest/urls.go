package rest

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api"

func escape(segment string) string {
	return url.PathEscape(segment)
}

func entryPointURL() string {
	return apiPrefix + "/"
}

func personsURL() string {
	return apiPrefix + "/persons/"
}

func mealsURL() string {
	return apiPrefix + "/meals/"
}

func portionsURL() string {
	return apiPrefix + "/portions/"
}

func mealRecordsURL() string {
	return apiPrefix + "/mealrecords/"
}

func personURL(id string) string {
	return personsURL() + escape(id) + "/"
}

func personMealRecordsURL(id string) string {
	return personURL(id) + "mealrecords/"
}

func mealURL(id string) string {
	return mealsURL() + escape(id) + "/"
}

func portionURL(id string) string {
	return portionsURL() + escape(id) + "/"
}

func mealPortionsURL(meal string) string {
	return mealURL(meal) + "mealportions/"
}

func mealPortionURL(meal, handle string) string {
	return mealPortionsURL(meal) + escape(handle) + "/"
}

func mealRecordURL(meal, handle string) string {
	return mealURL(meal) + "mealrecords/" + escape(handle) + "/"
}

// absoluteURL prefixes path with the configured base URL, or with the
// scheme and host of the current request.
func (h *Handler) absoluteURL(c echo.Context, path string) string {
	if base := h.config.Server.BaseURL; base != "" {
		return strings.TrimSuffix(base, "/") + path
	}
	return c.Scheme() + "://" + c.Request().Host + path
}

// profileURL is the documentation URL of a resource type.
func (h *Handler) profileURL(resource string) string {
	return strings.TrimSuffix(h.config.Hypermedia.ProfileBase, "/") + "/" + resource + "/"
}
