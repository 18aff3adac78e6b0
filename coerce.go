package scopt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// CoercerFunc converts one raw token into a typed value.
type CoercerFunc[T any] func(raw string) (T, error)

// KV is the coerced value of a key-value option such as --max:libA=5.
type KV[K, V any] struct {
	Key   K
	Value V
}

var coercers = map[reflect.Type]func(raw string) (any, error){}

// RegisterCoercer installs fn as the default coercer for T, making T usable
// with Opt, Arg and KVOpt without a per-node Coerce call. Later registrations
// for the same type win. Not safe to call concurrently with parsing.
func RegisterCoercer[T any](fn CoercerFunc[T]) {
	coercers[reflect.TypeOf((*T)(nil)).Elem()] = func(raw string) (any, error) {
		return fn(raw)
	}
}

func coercerFor(t reflect.Type) (func(raw string) (any, error), bool) {
	c, ok := coercers[t]
	return c, ok
}

func notValid(raw, typ string) error {
	return fmt.Errorf("'%s' is not a valid %s", raw, typ)
}

func parseBoolToken(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, notValid(raw, "boolean")
}

func init() {
	RegisterCoercer(func(raw string) (string, error) { return raw, nil })
	RegisterCoercer(parseBoolToken)
	RegisterCoercer(func(raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, notValid(raw, "integer")
		}
		return n, nil
	})
	RegisterCoercer(func(raw string) (int64, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, notValid(raw, "integer")
		}
		return n, nil
	})
	RegisterCoercer(func(raw string) (uint, error) {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, notValid(raw, "non-negative integer")
		}
		return uint(n), nil
	})
	RegisterCoercer(func(raw string) (uint64, error) {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, notValid(raw, "non-negative integer")
		}
		return n, nil
	})
	RegisterCoercer(func(raw string) (float64, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, notValid(raw, "number")
		}
		return f, nil
	})
	RegisterCoercer(func(raw string) (time.Duration, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, notValid(raw, "duration")
		}
		return d, nil
	})
	RegisterCoercer(func(raw string) (*semver.Version, error) {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, notValid(raw, "semantic version")
		}
		return v, nil
	})
	RegisterCoercer(func(raw string) (uuid.UUID, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.UUID{}, notValid(raw, "UUID")
		}
		return id, nil
	})
}
