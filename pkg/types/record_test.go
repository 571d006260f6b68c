package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Category
	}{
		{name: "canonical admin", raw: "Admin", want: CategoryAdmin},
		{name: "lowercase admin", raw: "admin", want: CategoryAdmin},
		{name: "uppercase admin", raw: "ADMIN", want: CategoryAdmin},
		{name: "padded admin", raw: " admin ", want: CategoryAdmin},
		{name: "canonical manager", raw: "Manager", want: CategoryManager},
		{name: "shouting manager", raw: "MANAGER", want: CategoryManager},
		{name: "empty", raw: "", want: CategoryOther},
		{name: "whitespace only", raw: "   ", want: CategoryOther},
		{name: "typo", raw: "adminn", want: CategoryOther},
		{name: "unknown", raw: "supervisor", want: CategoryOther},
		{name: "canonical other", raw: "Other", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCategory(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Normalizer output is always one of the three canonical values,
// whatever the input.
func TestNormalizeCategoryClosedSet(t *testing.T) {
	inputs := []string{"", " ", "admin", "ADMIN", "Manager", "other", "garbage", "\tadmin\n", "mänager"}
	valid := map[Category]bool{CategoryAdmin: true, CategoryManager: true, CategoryOther: true}

	for _, raw := range inputs {
		assert.True(t, valid[NormalizeCategory(raw)], "input %q", raw)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw    string
		want   Category
		wantOK bool
	}{
		{raw: "admin", want: CategoryAdmin, wantOK: true},
		{raw: " Manager ", want: CategoryManager, wantOK: true},
		{raw: "OTHER", want: CategoryOther, wantOK: true},
		{raw: "supervisor", want: CategoryOther, wantOK: false},
		{raw: "", want: CategoryOther, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.raw)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.raw)
	}
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, Record{ID: "1", Name: "Ravi"}.Validate())
	assert.ErrorIs(t, Record{ID: "1"}.Validate(), ErrInvalidName)
}
