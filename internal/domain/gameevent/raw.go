package gameevent

import "math"

// RawEvent is one play as delivered by the upstream play-by-play feed.
// Accessors never fail: a missing or mistyped field reads as absent.
type RawEvent map[string]any

// TypeKey returns the play type descriptor, e.g. "shot-on-goal".
func (r RawEvent) TypeKey() string {
	value, _ := r["typeDescKey"].(string)
	return value
}

// Map returns the nested object stored under key.
func (r RawEvent) Map(key string) RawEvent {
	switch value := r[key].(type) {
	case map[string]any:
		return RawEvent(value)
	case RawEvent:
		return value
	default:
		return nil
	}
}

func (r RawEvent) String(key string) *string {
	value, ok := r[key].(string)
	if !ok {
		return nil
	}
	return &value
}

func (r RawEvent) Int64(key string) *int64 {
	value, ok := toInt64(r[key])
	if !ok {
		return nil
	}
	return &value
}

func (r RawEvent) Int(key string) *int {
	value, ok := toInt64(r[key])
	if !ok {
		return nil
	}
	out := int(value)
	return &out
}

// IntOr reads an integer field, returning fallback when it is absent.
func (r RawEvent) IntOr(key string, fallback int) int {
	if value := r.Int(key); value != nil {
		return *value
	}
	return fallback
}

// toInt64 accepts only whole numbers. Fractions and numeric strings read as absent.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case interface{ Int64() (int64, error) }:
		out, err := v.Int64()
		return out, err == nil
	default:
		return 0, false
	}
}

func wholeFloat(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
