package gemini

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hr-assistant/internal/ai"
)

// decodeResult parses the model text into T. Every field declared by T must be
// present and non-null in the payload; types are not coerced.
func decodeResult[T any](raw string) (*T, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, ai.ErrNoContent
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: payload is not an object", ai.ErrMalformedResponse)
	}

	// mapstructure skips nil input before any hook runs, so nulls are caught here.
	if err := rejectNulls("", data); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &out,
		ErrorUnset: true,
		DecodeHook: rejectFractionalInts,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	return &out, nil
}

// rejectNulls fails on the first null anywhere in the payload. No schema field is nullable.
func rejectNulls(path string, value any) error {
	switch v := value.(type) {
	case nil:
		return fmt.Errorf("%s is null", path)
	case map[string]any:
		for key, item := range v {
			if err := rejectNulls(joinPath(path, key), item); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range v {
			if err := rejectNulls(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// rejectFractionalInts keeps mapstructure from truncating 79.9 into an integer field.
func rejectFractionalInts(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f := data.(float64); f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
	}
	return data, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
