// Package schema declares the request schema of every resource type and
// validates payloads against them before anything is written.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaBaseURL = "https://tapi.local/schemas/"

// ViolationError reports a payload that does not satisfy its schema.
type ViolationError struct {
	Resource string
	Message  string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s payload does not match schema: %s", e.Resource, e.Message)
}

// Validator holds the compiled schema of every resource type.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator compiles the schemas returned by Describe.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	compiled := make(map[string]*jsonschema.Schema, len(definitions))
	for name := range definitions {
		raw, err := json.Marshal(Describe(name))
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s schema", name)
		}
		url := schemaBaseURL + name + ".json"
		if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
			return nil, errors.Wrapf(err, "add %s schema", name)
		}
		sch, err := compiler.Compile(url)
		if err != nil {
			return nil, errors.Wrapf(err, "compile %s schema", name)
		}
		compiled[name] = sch
	}

	return &Validator{compiled: compiled}, nil
}

// Validate checks a decoded JSON value (as produced by json.Unmarshal into
// any) against the schema of resource. Unknown properties are allowed.
func (v *Validator) Validate(resource string, payload any) error {
	sch, ok := v.compiled[resource]
	if !ok {
		return fmt.Errorf("no schema for resource %q", resource)
	}

	if err := sch.Validate(payload); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ViolationError{Resource: resource, Message: violationMessage(verr)}
		}
		return errors.Wrapf(err, "validate %s payload", resource)
	}
	return nil
}

// violationMessage picks the innermost cause, which names the offending field.
func violationMessage(verr *jsonschema.ValidationError) string {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation == "" {
		return leaf.Message
	}
	return fmt.Sprintf("%s: %s", leaf.InstanceLocation, leaf.Message)
}

// Decode copies a validated request body into a typed input struct.
func Decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "decode payload")
	}
	return nil
}
