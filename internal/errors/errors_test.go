package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputfFormatsMessage(t *testing.T) {
	err := Inputf("invalid tank geometry: D=%.2f", -1.0)
	assert.Equal(t, "[INPUT_ERROR] invalid tank geometry: D=-1.00", err.Error())
	assert.True(t, err.Is(TypeInput))
}

func TestIsTypeThroughWrapping(t *testing.T) {
	cause := fmt.Errorf("open blueprint.json: no such file")
	err := fmt.Errorf("loading: %w", Wrap(TypeCatalog, "cannot read catalog", cause))

	assert.True(t, IsType(err, TypeCatalog))
	assert.False(t, IsType(err, TypeInput))
	assert.False(t, IsType(cause, TypeCatalog))
	assert.Contains(t, err.Error(), "no such file")
}

func TestWithContext(t *testing.T) {
	err := New(TypeExport, "cannot write").WithContext("path", "out.xlsx")
	assert.Equal(t, "out.xlsx", err.Context["path"])
}
