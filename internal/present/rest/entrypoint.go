package rest

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
)

func (h *Handler) handleEntryPoint(c echo.Context) error {
	doc := h.newDocument()
	doc.AddControlSelf(entryPointURL())
	doc.AddControl(rel("persons-all"), personsURL())
	doc.AddControl(rel("meals-all"), mealsURL())
	doc.AddControl(rel("portions-all"), portionsURL())
	doc.AddControl(rel("mealrecords-all"), mealRecordsURL())
	return presenter.OK(c, doc)
}

func (h *Handler) docsURL(section string) string {
	return strings.TrimSuffix(h.config.Hypermedia.APIDocs, "/") + "/#reference/" + section
}

func (h *Handler) handleLinkRelations(c echo.Context) error {
	return presenter.Redirect(c, h.docsURL("link-relations"))
}

// handleProfiles redirects to the profile section, or to one resource's
// profile when the path names it.
func (h *Handler) handleProfiles(c echo.Context) error {
	section := "profiles"
	if profile := c.Param("profile"); profile != "" {
		section += "/" + profile
	}
	return presenter.Redirect(c, h.docsURL(section))
}
