package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeProductName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Widget", "Widget"},
		{"<b>Widget</b>", "bWidget/b"},
		{"<script>", "script"},
		{"<>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeProductName(tt.input))
	}
}

func TestNewProduct(t *testing.T) {
	p := NewProduct("<Gadget>", "Aevum", 1000, 500)
	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, "Aevum", p.CreationCity)
	assert.Equal(t, 1000.0, p.DesignCost)
	assert.Equal(t, 500.0, p.AdvCost)
	assert.NotNil(t, p.SellPolicies)
	assert.NotNil(t, p.ProductionLimits)
}

func TestWrapActionError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		subject  string
		err      error
		expected string
		isNil    bool
	}{
		{
			name:  "nil error returns nil",
			op:    "makeProduct",
			err:   nil,
			isNil: true,
		},
		{
			name:     "with subject",
			op:       "makeProduct",
			subject:  "Gadget",
			err:      ErrDuplicateName,
			expected: `makeProduct "Gadget": name already in use`,
		},
		{
			name:     "without subject",
			op:       "issueDividends",
			err:      ErrInvalidPercent,
			expected: "issueDividends: percent out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapActionError(tt.op, tt.subject, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}
