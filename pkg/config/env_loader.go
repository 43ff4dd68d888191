/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carverauto/netwatch/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")
)

//nolint:gochecknoglobals // reflect type handle
var jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// EnvConfigLoader loads configuration from environment variables.
// Nested fields join their json tags with underscores, so with the NETWATCH_
// prefix DATABASE_HOST maps to config.Database.Host as NETWATCH_DATABASE_HOST.
// <prefix>CONFIG_JSON, when set, replaces the whole document.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader by reading from environment variables.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if jsonConfig := os.Getenv(e.prefix + "CONFIG_JSON"); jsonConfig != "" {
		if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %sCONFIG_JSON: %w", e.prefix, err)
		}

		e.debug().Msg("Loaded configuration from CONFIG_JSON environment variable")

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	n := e.loadStruct(v, e.prefix)

	e.debug().Int("fields", n).Msg("Loaded configuration from environment variables")

	return nil
}

// loadStruct fills the fields of v and returns how many were set.
func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) int {
	t := v.Type()
	set := 0

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		envName := prefix + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))

		n, err := e.loadField(field, envName)
		if err != nil {
			e.debug().Str("env", envName).Err(err).Msg("Failed to set field from environment variable")

			continue
		}

		set += n
	}

	return set
}

func (e *EnvConfigLoader) loadField(field reflect.Value, envName string) (int, error) {
	if isNestedStruct(field.Type()) {
		return e.loadNested(field, envName+"_"), nil
	}

	value, ok := os.LookupEnv(envName)
	if !ok || value == "" {
		return 0, nil
	}

	if field.Kind() == reflect.Ptr {
		ptr := reflect.New(field.Type().Elem())
		if err := setValue(ptr.Elem(), envName, value); err != nil {
			return 0, err
		}

		field.Set(ptr)

		return 1, nil
	}

	if err := setValue(field, envName, value); err != nil {
		return 0, err
	}

	return 1, nil
}

// loadNested only allocates a nil struct pointer when at least one of its
// fields is present in the environment.
func (e *EnvConfigLoader) loadNested(field reflect.Value, prefix string) int {
	if field.Kind() != reflect.Ptr {
		return e.loadStruct(field, prefix)
	}

	if !field.IsNil() {
		return e.loadStruct(field.Elem(), prefix)
	}

	candidate := reflect.New(field.Type().Elem())

	n := e.loadStruct(candidate.Elem(), prefix)
	if n > 0 {
		field.Set(candidate)
	}

	return n
}

func isNestedStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct && t != reflect.TypeOf(time.Time{})
}

func setValue(field reflect.Value, envName, value string) error {
	if field.Kind() != reflect.String && reflect.PointerTo(field.Type()).Implements(jsonUnmarshalerType) {
		return unmarshalScalar(field, envName, value)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(field, envName, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value for %s: %w", envName, err)
		}

		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %w", envName, err)
		}

		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))

			for i, p := range parts {
				slice.Index(i).SetString(strings.TrimSpace(p))
			}

			field.Set(slice)

			return nil
		}

		return unmarshalJSON(field, envName, value)
	default:
		return unmarshalJSON(field, envName, value)
	}

	return nil
}

func setInt(field reflect.Value, envName, value string) error {
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %w", envName, err)
		}

		field.SetInt(int64(d))

		return nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value for %s: %w", envName, err)
	}

	field.SetInt(i)

	return nil
}

// unmarshalScalar handles types such as models.Duration that accept either a
// bare JSON number or a JSON string.
func unmarshalScalar(field reflect.Value, envName, value string) error {
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return unmarshalJSON(field, envName, value)
	}

	quoted, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return unmarshalJSON(field, envName, string(quoted))
}

func unmarshalJSON(field reflect.Value, envName, value string) error {
	if err := json.Unmarshal([]byte(value), field.Addr().Interface()); err != nil {
		return fmt.Errorf("invalid %s value for %s: %w", field.Kind(), envName, err)
	}

	return nil
}

func (e *EnvConfigLoader) debug() *zerolog.Event {
	if e.logger == nil {
		nop := zerolog.Nop()
		return nop.Debug()
	}

	return e.logger.Debug()
}
