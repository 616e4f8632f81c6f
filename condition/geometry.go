package condition

import "github.com/paulmach/orb"

// Geometry rules target the DuckDB spatial extension.
var geometryRules = MustRuleSet(TypeGeometry,
	Rule{Comparator: "intersects", Reverse: "does not intersect", Expression: "(ST_Intersects(column, ST_GeomFromText(?)))"},
	Rule{Comparator: "does not intersect", Reverse: "intersects", Expression: "(NOT ST_Intersects(column, ST_GeomFromText(?)))"},
	Rule{Comparator: "within", Reverse: "not within", Expression: "(ST_Within(column, ST_GeomFromText(?)))"},
	Rule{Comparator: "not within", Reverse: "within", Expression: "(NOT ST_Within(column, ST_GeomFromText(?)))"},
)

// Geometry is a spatial condition. The value is WKT text.
type Geometry struct {
	Base

	// Geometry is the parsed value.
	Geometry orb.Geometry `json:"-"`
}

// Type returns TypeGeometry.
func (Geometry) Type() Type { return TypeGeometry }

// Bound returns the bounding box of the value, e.g. for index prefiltering.
func (c Geometry) Bound() orb.Bound {
	return c.Geometry.Bound()
}

// Encode converts the condition to a Fragment. The WKT is bound as given.
func (c Geometry) Encode() Fragment {
	return geometryRules.Encode(c.Base, c.CondValue.(string))
}

// ParseGeometry parses a geometry condition.
func ParseGeometry(cfg TypeConfig, in Input) (Condition, error) {
	v := newValidation(TypeGeometry)
	base := parseBase(v, cfg, geometryRules, in)

	g, ok := ValidateGeometry(in.Value)
	if !ok {
		v.invalidValue(in.Column)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return Geometry{Base: base, Geometry: g}, nil
}
