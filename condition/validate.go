package condition

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Date layouts accepted by ValidateDate, tried in order.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
}

// ValidateIn returns value as text if it is a member of allowed.
// Reports false when value is absent or not text, when allowed is empty,
// or when value is not in allowed.
func ValidateIn(value any, allowed []string) (string, bool) {
	s, ok := value.(string)
	if !ok || s == "" || len(allowed) == 0 {
		return "", false
	}
	if !slices.Contains(allowed, s) {
		return "", false
	}
	return s, true
}

// ValidateText returns value if it is a text scalar.
func ValidateText(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// ValidateNumber returns value in decimal text form if it is a finite
// numeric scalar. Integers are formatted exactly and json.Number text is
// kept as given, so the text binds the value the caller supplied.
// Numeric text in a plain string, NaN and infinities are not accepted.
func ValidateNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		if !isFinite(float64(v)) {
			return "", false
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		if !isFinite(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		s := v.String()
		if !isDecimal(s) {
			return "", false
		}
		f, err := v.Float64()
		if err != nil || !isFinite(f) {
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isDecimal reports whether s only uses the characters of a JSON number.
// strconv accepts hex floats, underscores and "Inf", which backends do not.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-', r == '+', r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// ValidateBool returns value if it is a boolean scalar.
func ValidateBool(value any) (bool, bool) {
	b, ok := value.(bool)
	return b, ok
}

// ValidateDate returns value as a time if it is a time.Time or text in
// YYYY-MM-DD or RFC 3339 form.
func ValidateDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// ValidateGeometry returns value as a geometry if it is WKT text describing
// a non-empty geometry with finite coordinates.
func ValidateGeometry(value any) (orb.Geometry, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil, false
	}
	g, err := wkt.Unmarshal(s)
	if err != nil || g == nil || isEmptyGeometry(g) {
		return nil, false
	}
	b := g.Bound()
	for _, f := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if !isFinite(f) {
			return nil, false
		}
	}
	return g, true
}

// isEmptyGeometry reports collections without members. The WKT decoder
// yields one for truncated input such as "GEOMETRYCOLLECTION(".
func isEmptyGeometry(g orb.Geometry) bool {
	switch c := g.(type) {
	case orb.Collection:
		if len(c) == 0 {
			return true
		}
		return slices.ContainsFunc(c, isEmptyGeometry)
	case orb.MultiPoint:
		return len(c) == 0
	case orb.LineString:
		return len(c) == 0
	case orb.MultiLineString:
		return len(c) == 0
	case orb.Polygon:
		return len(c) == 0
	case orb.MultiPolygon:
		return len(c) == 0
	}
	return false
}
