package condfilter

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/condfilter/condition"
)

// GeometryExtensionName is the Arrow extension name of WKB geometry columns.
const GeometryExtensionName = "geoarrow.wkb"

// TypeForArrow returns the condition type that filters columns of data type dt.
// Returns false for data types no condition type supports (binary, nested, ...).
func TypeForArrow(dt arrow.DataType) (condition.Type, bool) {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return condition.TypeText, true
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
		arrow.DECIMAL128, arrow.DECIMAL256:
		return condition.TypeNumber, true
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP:
		return condition.TypeDate, true
	case arrow.BOOL:
		return condition.TypeBoolean, true
	case arrow.EXTENSION:
		if ext, ok := dt.(arrow.ExtensionType); ok && ext.ExtensionName() == GeometryExtensionName {
			return condition.TypeGeometry, true
		}
	}
	return "", false
}
