package scopt

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// NonEmpty rejects empty string values.
func NonEmpty() func(string) error {
	return func(v string) error {
		if v == "" {
			return fmt.Errorf("must not be empty")
		}
		return nil
	}
}

// MinInt rejects values below min.
func MinInt(min int) func(int) error {
	return func(v int) error {
		if v < min {
			return fmt.Errorf("must be at least %d, got %d", min, v)
		}
		return nil
	}
}

// MaxInt rejects values above max.
func MaxInt(max int) func(int) error {
	return func(v int) error {
		if v > max {
			return fmt.Errorf("must be at most %d, got %d", max, v)
		}
		return nil
	}
}

// OneOf rejects values outside the allowed set.
func OneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v, got '%s'", allowed, v)
	}
}

// MatchesSchema returns a validator that checks a string value against a JSON
// schema. The value is decoded as JSON first; values that are not valid JSON
// are validated as plain strings. The schema is compiled once, at declaration
// time; an uncompilable schema is a programmer error and panics.
func MatchesSchema(name, schema string) func(string) error {
	compiled, err := jsonschema.CompileString(name, schema)
	if err != nil {
		panic(fmt.Errorf("compile schema %s: %w", name, err))
	}
	return func(v string) error {
		var data interface{}
		if err := json.Unmarshal([]byte(v), &data); err != nil {
			data = v
		}
		if err := compiled.Validate(data); err != nil {
			return fmt.Errorf("does not match schema %s: %v", name, err)
		}
		return nil
	}
}
