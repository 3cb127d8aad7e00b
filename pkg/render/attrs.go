package render

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/veltaweb/velta/pkg/jsx"
)

// writeAttrs serializes props as ` key="value"` pairs in declaration
// order. Event-handler props are skipped here and emitted afterwards as
// data-on-<event> markers for the client runtime to bind against.
// A "children" key never serializes, whatever a caller put there.
func writeAttrs(w io.Writer, props jsx.Props) error {
	for _, attr := range props {
		if attr.Key == "children" {
			continue
		}
		if isEventHandler(attr.Key, attr.Value) {
			continue
		}
		if attr.Value == nil {
			continue
		}

		if isBooleanAttr(attr.Key) {
			if b, ok := attr.Value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", attr.Key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr.Key, escapeAttr(attrToString(attr.Value))); err != nil {
			return err
		}
	}

	for _, attr := range props {
		if isEventHandler(attr.Key, attr.Value) {
			event := strings.ToLower(attr.Key[2:])
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, event); err != nil {
				return err
			}
		}
	}

	return nil
}

// isEventHandler reports whether a prop is an event handler:
// an on-prefixed key holding a function value.
func isEventHandler(key string, value any) bool {
	if !strings.HasPrefix(key, "on") || len(key) <= 2 || value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to its textual form.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
