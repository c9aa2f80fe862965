package snyk

import "github.com/tidwall/gjson"

// Shape identifies which kind of Snyk report a document is.
type Shape int

const (
	ShapeDependency Shape = iota
	ShapeIaC
)

func (s Shape) String() string {
	switch s {
	case ShapeIaC:
		return "iac"
	case ShapeDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

// Classify returns ShapeIaC if the document has a non-null list of
// infrastructure-as-code issues, and ShapeDependency otherwise.
//
// Only that one key is looked at; whether the chosen shape is actually
// well-formed is left to the converter.
func Classify(doc Document) Shape {
	field := gjson.GetBytes(doc, IaCIssuesField)
	if field.Exists() && field.Type != gjson.Null {
		return ShapeIaC
	}

	return ShapeDependency
}
