package stylesheet

// WidgetKind is a UI control that can render a question
type WidgetKind int

const (
	UnknownWidget WidgetKind = iota
	Checkbox
	Radio
	Dropdown
	Slider
	Spinbox
	Text
	DatePicker
)

var widgetNames = [...]string{
	UnknownWidget: "unknown",
	Checkbox:      "checkbox",
	Radio:         "radio",
	Dropdown:      "dropdown",
	Slider:        "slider",
	Spinbox:       "spinbox",
	Text:          "text",
	DatePicker:    "datepicker",
}

func (k WidgetKind) String() string {
	if int(k) >= 0 && int(k) < len(widgetNames) {
		return widgetNames[k]
	}
	return "unknown"
}

// ParseWidgetKind maps a QLS widget keyword to its kind
func ParseWidgetKind(name string) WidgetKind {
	for i, n := range widgetNames {
		if i != int(UnknownWidget) && n == name {
			return WidgetKind(i)
		}
	}
	return UnknownWidget
}
