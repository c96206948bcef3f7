package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategory(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{CodePresetNotFound, CategoryPreset},
		{CodeBadLoad, CategoryInput},
		{CodeOutsideEnvelope, CategoryEnvelope},
		{CodeLogbook, CategoryIO},
		{"ERR", CategoryInternal},
	}

	for _, tt := range tests {
		err := New(tt.code, "boom", nil)
		assert.Equal(t, tt.category, err.Category, tt.code)
	}
}

func TestError_UnwrapAndIs(t *testing.T) {
	cause := stderrors.New("no such aircraft")
	err := Wrap(CodePresetNotFound, cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, New(CodePresetNotFound, "anything", nil))
	assert.NotErrorIs(t, err, New(CodeBadLoad, "anything", nil))
	assert.Equal(t, "[ERR_101_PRESET_NOT_FOUND] no such aircraft", err.Error())
}

func TestWrap_NilIsNil(t *testing.T) {
	require.Nil(t, Wrap(CodeLogbook, nil))
}

func TestDisplay_IncludesSuggestion(t *testing.T) {
	err := Newf(CodePresetNotFound, nil, "unknown aircraft %q", "ph-xxx").
		WithSuggestion("run 'loadsheet aircraft list'")

	out := Display(err)
	assert.Contains(t, out, `unknown aircraft "ph-xxx"`)
	assert.Contains(t, out, "aircraft list")

	plain := fmt.Errorf("plain")
	assert.Equal(t, "plain", Display(plain))
}
