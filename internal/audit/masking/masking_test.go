package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a****@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "****", MaskEmail("@x"))
	assert.Equal(t, "", MaskEmail("  "))
	assert.Equal(t, "****-doe", MaskEmail("john-doe"))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", MaskSecret("abc"))
	assert.Equal(t, "****7890", MaskSecret("1234567890"))
}

func TestMaskFieldsOnlyTouchesListedStrings(t *testing.T) {
	out := MaskFields(map[string]any{
		"name":  "Ana",
		"email": "ana@example.com",
		"count": 3,
		" ":     "dropped",
	}, "email", "count")

	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, "a****@example.com", out["email"])
	assert.Equal(t, 3, out["count"])
	assert.NotContains(t, out, " ")
	assert.Nil(t, MaskFields(nil, "email"))
}
