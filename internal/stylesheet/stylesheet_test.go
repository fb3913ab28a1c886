package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWidgetKind(t *testing.T) {
	for _, name := range []string{"checkbox", "radio", "dropdown", "slider", "spinbox", "text", "datepicker"} {
		kind := ParseWidgetKind(name)
		assert.NotEqual(t, UnknownWidget, kind, name)
		assert.Equal(t, name, kind.String())
	}
	assert.Equal(t, UnknownWidget, ParseWidgetKind("unknown"))
	assert.Equal(t, UnknownWidget, ParseWidgetKind("knob"))
}

func TestQuestionsInDocumentOrder(t *testing.T) {
	sheet := &Stylesheet{Pages: []*Page{
		{Name: "p1", Segments: []Segment{
			&Question{ID: "a"},
			&Section{Name: "s", Segments: []Segment{
				&Question{ID: "b", Widgets: []*StyledWidget{{Kind: Radio}}},
				&Section{Name: "inner", Segments: []Segment{&Question{ID: "c"}}},
			}},
		}},
		{Name: "p2", Segments: []Segment{&Question{ID: "a"}}},
	}}

	var ids []string
	for _, q := range sheet.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, ids)
	assert.True(t, sheet.Questions()[1].HasWidget())
	assert.False(t, sheet.Questions()[0].HasWidget())
}
