package presenter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"

	"github.com/tapi-calorie/tapi/internal/hypermedia"
)

func write(c echo.Context, status int, body []byte) error {
	return c.Blob(status, hypermedia.MediaType, body)
}

// ETag returns the weak entity tag of a serialized body.
func ETag(body []byte) string {
	return fmt.Sprintf(`W/"%016x"`, xxh3.Hash(body))
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

// OK writes a Mason document with a weak ETag, answering 304 when the
// client already holds it.
func OK(c echo.Context, doc hypermedia.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return InternalError(c, err)
	}

	etag := ETag(body)
	c.Response().Header().Set("ETag", etag)
	if match := c.Request().Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		return c.NoContent(http.StatusNotModified)
	}

	return write(c, http.StatusOK, body)
}

// Created answers a successful POST.
func Created(c echo.Context, location string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	c.Response().Header().Set(echo.HeaderContentType, hypermedia.MediaType)
	c.Response().WriteHeader(http.StatusCreated)
	return nil
}

// NoContent answers a successful PUT or DELETE.
func NoContent(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, hypermedia.MediaType)
	c.Response().WriteHeader(http.StatusNoContent)
	return nil
}

// Error writes the uniform error document.
func Error(c echo.Context, status int, profile, title, message string) error {
	doc := hypermedia.New()
	doc["resource_url"] = c.Request().URL.Path
	doc.AddError(title, message)
	doc.AddControlProfile(profile)

	body, err := json.Marshal(doc)
	if err != nil {
		return InternalError(c, err)
	}
	return write(c, status, body)
}

func InternalError(c echo.Context, err error) error {
	slog.ErrorContext(
		c.Request().Context(), "internal error",
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)

	doc := hypermedia.New()
	doc["resource_url"] = c.Request().URL.Path
	doc.AddError("Internal server error", "The request could not be completed.")

	body, merr := json.Marshal(doc)
	if merr != nil {
		return merr
	}
	return write(c, http.StatusInternalServerError, body)
}

func Redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}
