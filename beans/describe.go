package beans

import "fmt"

// Describe renders v as a tree of maps, slices and strings, suitable for
// YAML or JSON output.
func Describe(v Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Reference:
		return map[string]any{"ref": x.Name}
	case Concrete:
		return map[string]any{"value": describeConcrete(x.Value)}
	case *Definition:
		return DescribeDefinition(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// DescribeDefinition renders d as a map. Keys that would be empty are omitted.
func DescribeDefinition(d *Definition) map[string]any {
	if d == nil {
		return nil
	}
	out := map[string]any{"type": d.TypeName}
	if d.ID != "" {
		out["id"] = d.ID
	}
	if d.FactoryMethod != "" {
		out["factory-method"] = d.FactoryMethod
	}
	if len(d.ConstructorArgs) > 0 {
		args := make([]any, 0, len(d.ConstructorArgs))
		for _, a := range d.ConstructorArgs {
			args = append(args, Describe(a))
		}
		out["args"] = args
	}
	if len(d.props) > 0 {
		props := make(map[string]any, len(d.props))
		for _, p := range d.props {
			props[p.Name] = Describe(p.Value)
		}
		out["properties"] = props
	}
	return out
}

func describeConcrete(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string, bool, int, int64, float64:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%T", v)
	}
}
