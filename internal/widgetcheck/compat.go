package widgetcheck

import (
	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/types"
)

var numberWidgets = []stylesheet.WidgetKind{stylesheet.Slider, stylesheet.Spinbox, stylesheet.Text}

// Widgets allowed per question type. Read-only after package init.
var compatible = map[types.Type][]stylesheet.WidgetKind{
	types.Boolean: {stylesheet.Checkbox, stylesheet.Radio, stylesheet.Dropdown},
	types.Integer: numberWidgets,
	types.Decimal: numberWidgets,
	types.String:  {stylesheet.Text, stylesheet.Dropdown, stylesheet.Radio},
	types.Date:    {stylesheet.Text, stylesheet.DatePicker},
}

// Compatible returns the widgets that can render a question of type t.
// Undefined has no compatible widgets.
func Compatible(t types.Type) []stylesheet.WidgetKind {
	kinds := compatible[t]
	out := make([]stylesheet.WidgetKind, len(kinds))
	copy(out, kinds)
	return out
}

// IsCompatible reports whether widget can render a question of type t
func IsCompatible(t types.Type, widget stylesheet.WidgetKind) bool {
	for _, k := range compatible[t] {
		if k == widget {
			return true
		}
	}
	return false
}
