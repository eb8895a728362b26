package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		data           string
		expectedAction Action
		expectedArgs   []string
		expectFail     bool
	}{
		{
			name:           "bare action",
			data:           "show_catalog",
			expectedAction: ActShowCatalog,
		},
		{
			name:           "action with id",
			data:           "category_7",
			expectedAction: ActCategory,
			expectedArgs:   []string{"7"},
		},
		{
			name:           "keypad press carries key and id",
			data:           "quantity_3_12",
			expectedAction: ActQuantity,
			expectedArgs:   []string{"3", "12"},
		},
		{
			name:           "keypad backspace",
			data:           "quantity_del_12",
			expectedAction: ActQuantity,
			expectedArgs:   []string{"del", "12"},
		},
		{
			name:           "longest action wins over shared prefix",
			data:           "confirm_delete_category_4",
			expectedAction: ActConfirmDeleteCategory,
			expectedArgs:   []string{"4"},
		},
		{
			name:           "delete_category is not shadowed by category",
			data:           "delete_category",
			expectedAction: ActDeleteCategory,
		},
		{
			name:           "edit_product without id lists products",
			data:           "edit_product",
			expectedAction: ActEditProduct,
		},
		{
			name:           "edit_product with id picks one",
			data:           "edit_product_9",
			expectedAction: ActEditProduct,
			expectedArgs:   []string{"9"},
		},
		{
			name:           "language carries its code",
			data:           "language_ES",
			expectedAction: ActLanguage,
			expectedArgs:   []string{"ES"},
		},
		{
			name:       "unknown action",
			data:       "launch_missiles",
			expectFail: true,
		},
		{
			name:       "prefix without separator does not match",
			data:       "categoryX",
			expectFail: true,
		},
		{
			name:       "empty data",
			data:       "",
			expectFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := Parse(tt.data)

			if tt.expectFail {
				assert.False(t, ok)
				return
			}

			assert.True(t, ok)
			assert.Equal(t, tt.expectedAction, parsed.Action)
			assert.Equal(t, tt.expectedArgs, parsed.Args)
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "bare", token: Token(ActViewCart)},
		{name: "with id", token: TokenID(ActAddToCart, 42)},
		{name: "with args", token: Token(ActQuantity, "7", "42")},
		{name: "country with name", token: Token(ActCountry, "Alemania")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.token)
			assert.True(t, ok, "every built token must parse back")
		})
	}
}

func TestParsedID(t *testing.T) {
	parsed, ok := Parse("quantity_3_12")
	assert.True(t, ok)

	id, hasID := parsed.ID()
	assert.True(t, hasID)
	assert.Equal(t, int64(12), id)
	assert.Equal(t, "3", parsed.Arg(0))

	bare, _ := Parse("view_cart")
	_, hasID = bare.ID()
	assert.False(t, hasID)
}

func TestParseAllRegisteredActions(t *testing.T) {
	for _, action := range actions {
		parsed, ok := Parse(TokenID(action, 5))
		assert.True(t, ok, string(action))
		assert.Equal(t, action, parsed.Action, string(action))
	}
}
