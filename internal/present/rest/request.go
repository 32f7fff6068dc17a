package rest

import (
	"encoding/json"
	"io"
	"mime"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tapi-calorie/tapi/internal/schema"
)

var (
	errUnsupportedMediaType = errors.New("unsupported media type")
	errMalformedPath        = errors.New("malformed path parameter")
)

// pathParam returns a path parameter unescaped. Echo routes on the raw path
// when the request used a non-canonical escaping such as %3A, and then leaves
// the parameter escaped.
func pathParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return "", errors.Wrapf(errMalformedPath, "%s: %s", name, err)
	}
	return unescaped, nil
}

// handleParams reads the :meal and :handle parameters of a sub-resource.
func handleParams(c echo.Context) (string, string, error) {
	meal, err := pathParam(c, "meal")
	if err != nil {
		return "", "", err
	}
	raw, err := pathParam(c, "handle")
	if err != nil {
		return "", "", err
	}
	return meal, raw, nil
}

func isJSONMediaType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}

// readPayload checks a POST or PUT body in order: media type, JSON syntax,
// schema of resource. The validated body is then decoded into out.
func (h *Handler) readPayload(c echo.Context, resource string, out any) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !isJSONMediaType(contentType) {
		return errors.Wrapf(errUnsupportedMediaType, "content type %q", contentType)
	}

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &schema.ViolationError{Resource: resource, Message: typeErr.Value + " is not representable"}
		}
		return errors.Wrap(errUnsupportedMediaType, "body is not JSON")
	}

	if err := h.validator.Validate(resource, payload); err != nil {
		return err
	}

	if err := schema.Decode(raw, out); err != nil {
		return &schema.ViolationError{Resource: resource, Message: errors.Cause(err).Error()}
	}
	return nil
}
