package widgetcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/types"
)

func TestUndefinedHasNoWidgets(t *testing.T) {
	assert.Empty(t, Compatible(types.Undefined))
	assert.False(t, IsCompatible(types.Undefined, stylesheet.Text))
}

func TestUnknownWidgetNeverCompatible(t *testing.T) {
	for _, ty := range types.All() {
		assert.False(t, IsCompatible(ty, stylesheet.UnknownWidget), ty.String())
		assert.NotEmpty(t, Compatible(ty), ty.String())
	}
}

func TestCompatibleReturnsCopy(t *testing.T) {
	got := Compatible(types.Integer)
	got[0] = stylesheet.Checkbox
	assert.Equal(t, []stylesheet.WidgetKind{stylesheet.Slider, stylesheet.Spinbox, stylesheet.Text}, Compatible(types.Decimal))
	assert.Equal(t, []stylesheet.WidgetKind{stylesheet.Slider, stylesheet.Spinbox, stylesheet.Text}, Compatible(types.Integer))
}
