package host

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

// cmdsRef evaluates to the maya.cmds module without an import statement,
// so every request stays a single expression
const cmdsRef = `__import__("maya.cmds").cmds`

// kwarg is one keyword argument of a cmds call
type kwarg struct {
	name  string
	value string
}

// pyString quotes s as a Python string literal.
// JSON string escapes are a subset of Python's. HTML escaping is off:
// Python 2 byte strings keep \u escapes literally.
func pyString(s string) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func pyStringList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = pyString(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// pyValue renders a scalar or list option as a Python literal
func pyValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "None", nil
	case bool:
		return pyBool(val), nil
	case string:
		return pyString(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case []string:
		return pyStringList(val), nil
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			p, err := pyValue(item)
			if err != nil {
				return "", err
			}
			parts[i] = p
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	}
	return "", fmt.Errorf("unsupported option value %v (%T)", v, v)
}

// call renders cmds.<fn>(args..., kw=...)
func call(fn string, args []string, kwargs []kwarg) string {
	parts := make([]string, 0, len(args)+len(kwargs))
	parts = append(parts, args...)
	for _, kw := range kwargs {
		parts = append(parts, kw.name+"="+kw.value)
	}
	return cmdsRef + "." + fn + "(" + strings.Join(parts, ", ") + ")"
}

// wrap turns an expression into one whose value is its JSON encoding
func wrap(expr string) string {
	return `__import__("json").dumps(` + expr + `)`
}

func selectExpr(names []string, clearFirst bool) string {
	if len(names) == 0 {
		if clearFirst {
			return call("select", nil, []kwarg{{"clear", "True"}})
		}
		return "None"
	}
	if clearFirst {
		return "[" + call("select", nil, []kwarg{{"clear", "True"}}) + ", " +
			call("select", []string{pyStringList(names)}, nil) + "]"
	}
	return call("select", []string{pyStringList(names)}, []kwarg{{"add", "True"}})
}

func exportExpr(req ports.ExportRequest) string {
	return call("file", []string{pyString(req.Path)}, []kwarg{
		{"force", pyBool(req.ForceOverwrite)},
		{"options", pyString("v=0")},
		{"type", pyString(req.Format.String())},
		{"uiConfiguration", pyBool(!req.StripUIConfig)},
		{"exportSelected", "True"},
	})
}

func importExpr(req ports.ImportRequest) (string, error) {
	mode := "i"
	if req.Mode == domain.LoadReference {
		mode = "r"
	}

	kwargs := []kwarg{
		{mode, "True"},
		{"options", pyString("v=0;")},
	}
	if req.FormatHint != "" {
		kwargs = append(kwargs, kwarg{"type", pyString(req.FormatHint.String())})
	}
	if req.Namespace != "" {
		kwargs = append(kwargs, kwarg{"namespace", pyString(req.Namespace)})
	}
	kwargs = append(kwargs, kwarg{"groupReference", pyBool(req.GroupName != "")})
	if req.GroupName != "" {
		kwargs = append(kwargs, kwarg{"groupName", pyString(req.GroupName)})
	}

	reserved := make(map[string]bool, len(kwargs))
	for _, kw := range kwargs {
		reserved[kw.name] = true
	}

	keys := make([]string, 0, len(req.Options))
	for k := range req.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if reserved[k] || !isIdentifier(k) {
			return "", fmt.Errorf("invalid host option %q", k)
		}
		v, err := pyValue(req.Options[k])
		if err != nil {
			return "", fmt.Errorf("host option %q: %w", k, err)
		}
		kwargs = append(kwargs, kwarg{k, v})
	}

	return call("file", []string{pyString(req.Path)}, kwargs), nil
}

func namespaceExistsExpr(name string) string {
	return call("namespace", nil, []kwarg{{"exists", pyString(name)}})
}

func focusExpr() string {
	return call("setFocus", []string{pyString("MayaWindow")}, nil)
}

func attrExistsExpr(object, attr string) string {
	return call("objExists", []string{pyString(object + "." + attr)}, nil)
}

func attrValueExpr(object, attr string) string {
	return call("getAttr", []string{pyString(object + "." + attr)}, nil)
}

func attrTypeExpr(object, attr string) string {
	return call("getAttr", []string{pyString(object + "." + attr)}, []kwarg{{"type", "True"}})
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
