package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accesskit/accesskit/internal/shared/errors"
)

func TestValidateStruct_PermName(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required,permname"`
	}

	t.Run("valid action:resource names pass", func(t *testing.T) {
		for _, name := range []string{"read:users", "write:roles", "delete:permissions", "read:audit_log"} {
			assert.NoError(t, ValidateStruct(req{Name: name}), name)
		}
	})

	t.Run("invalid names fail", func(t *testing.T) {
		for _, name := range []string{"", "readusers", "Read:Users", "read:", ":users", "read users"} {
			err := ValidateStruct(req{Name: name})
			assert.Error(t, err, name)
			assert.True(t, errors.IsValidationError(err))
		}
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "read:users", NormalizeName("  read:users "))
	assert.Equal(t, "read:users", NormalizeName("<b>read:users</b>"))
	// NFC composes the decomposed form of é
	assert.Equal(t, "r\u00e9le", NormalizeName("re\u0301le"))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "allows reading users", SanitizeText("allows reading users"))
	assert.Equal(t, "allows reading users", SanitizeText("<script>x</script>allows reading users"))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("b7a9c1de-0000-0000-0000-000000000000"))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("   "))
}
