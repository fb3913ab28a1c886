package diagnostic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportKeepsOrder(t *testing.T) {
	d := New()
	d.Reportf(UndefinedReference, 3, 10, "undefined reference to '%s'", "x")
	d.Warningf(5, 1, "question '%s' has an empty label", "y")
	d.Reportf(DuplicateQuestion, 7, 2, "question '%s' already declared", "z")

	assert.Equal(t, []Kind{UndefinedReference, Lint, DuplicateQuestion}, d.Kinds())
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, 2, d.ErrorCount())
	assert.Equal(t, 1, d.WarningCount())
	assert.True(t, d.HasErrors())
	assert.True(t, d.HasKind(DuplicateQuestion))
	assert.False(t, d.HasKind(IncompatibleWidget))
	assert.Equal(t, 1, d.CountKind(UndefinedReference))
}

func TestFormat(t *testing.T) {
	d := New()
	d.ReportWithHint(UndefinedReference, 3, 10, "undefined reference to 'x'", "declare 'x' before using it")
	d.Warningf(5, 1, "question 'y' has an empty label")

	want := "error[form.yml:3:10]: UndefinedReference: undefined reference to 'x'\n" +
		"  hint: declare 'x' before using it\n" +
		"warning[form.yml:5:1]: Lint: question 'y' has an empty label"
	assert.Equal(t, want, d.Format("form.yml"))
	assert.Equal(t, "", New().Format("form.yml"))
}

func TestAppendTagsFile(t *testing.T) {
	form := New()
	form.Reportf(DuplicateQuestion, 1, 1, "dup")
	sheet := New()
	sheet.Reportf(IncompatibleWidget, 2, 4, "bad widget")

	all := New()
	all.Append(form, "form.yml")
	all.Append(sheet, "style.yml")
	all.Append(nil, "ignored")

	require.Equal(t, 2, all.Count())
	assert.Equal(t, "form.yml", all.All()[0].File)
	assert.Equal(t, "style.yml", all.All()[1].File)
}

func TestPromoteWarnings(t *testing.T) {
	d := New()
	d.Warningf(1, 1, "w")
	assert.False(t, d.HasErrors())
	d.PromoteWarnings()
	assert.True(t, d.HasErrors())
}

func TestFormatJSON(t *testing.T) {
	d := New()
	d.Reportf(IncompatibleWidget, 4, 9, "widget 'slider' is not compatible with boolean")

	data, err := d.FormatJSON("style.yml")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "IncompatibleWidget", decoded[0]["kind"])
	assert.Equal(t, "error", decoded[0]["severity"])
	assert.Equal(t, "style.yml", decoded[0]["file"])
	assert.EqualValues(t, 4, decoded[0]["line"])
}
