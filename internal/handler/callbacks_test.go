package handler

import (
	"testing"

	"tiendabot/internal/callback"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal token",
			input:    "add_to_cart_9",
			expected: "add_to_cart_9",
		},
		{
			name:     "surrounding whitespace",
			input:    "  view_cart  ",
			expected: "view_cart",
		},
		{
			name:     "embedded newline",
			input:    "view\ncart",
			expected: "viewcart",
		},
		{
			name:     "unprintable characters",
			input:    "view_cart\x00\x01",
			expected: "view_cart",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestActionGuards(t *testing.T) {
	// the storefront surface must stay reachable without privileges
	for _, action := range []callback.Action{
		callback.ActLanguage,
		callback.ActMainMenu,
		callback.ActShowCatalog,
		callback.ActCategory,
		callback.ActViewCart,
		callback.ActProcessOrder,
		callback.ActViewOrders,
		callback.ActVerifyAccount,
		callback.ActCancelOrder,
	} {
		assert.False(t, adminActions[action], string(action))
		assert.False(t, ownerActions[action], string(action))
	}

	// panel actions stay behind the admin check
	for _, action := range []callback.Action{
		callback.ActAdminPanel,
		callback.ActManageOrders,
		callback.ActAcceptOrder,
		callback.ActDoDeleteCategory,
		callback.ActDoDeleteProduct,
	} {
		assert.True(t, adminActions[action], string(action))
	}

	// credential issuing is owner-only
	for _, action := range []callback.Action{
		callback.ActManageAdmins,
		callback.ActAddAdmin,
		callback.ActConfigureBot,
	} {
		assert.True(t, ownerActions[action], string(action))
	}
}
