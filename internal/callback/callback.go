// Package callback defines the grammar of inline-button payloads: an
// action name followed by `_`-separated arguments, with numeric ids kept
// in the trailing segments. Tokens are built and parsed only here, so a
// button and its handler can never drift apart.
package callback

import (
	"sort"
	"strconv"
	"strings"
)

// Action names the operation a button triggers
type Action string

const (
	ActLanguage     Action = "language"      // language_<CODE>
	ActConfigureBot Action = "configure_bot" //
	ActMainMenu     Action = "main_menu"     //
	ActShowCatalog  Action = "show_catalog"  //
	ActCategory     Action = "category"      // category_<id>

	ActViewCart   Action = "view_cart"   //
	ActEmptyCart  Action = "empty_cart"  //
	ActEditCart   Action = "edit_cart"   //
	ActCartRemove Action = "cart_remove" // cart_remove_<id>
	ActAddToCart  Action = "add_to_cart" // add_to_cart_<id>
	ActQuantity   Action = "quantity"    // quantity_<digit|del>_<id>
	ActConfirmAdd Action = "confirm_add" // confirm_add_<id>
	ActCancelAdd  Action = "cancel_add"  // cancel_add_<id>

	ActProcessOrder  Action = "process_order"  //
	ActPayment       Action = "payment"        // payment_<method>
	ActCountry       Action = "country"        // country_<name>
	ActVerifyAccount Action = "verify_account" //
	ActViewOrders    Action = "view_orders"    //

	ActAdminPanel   Action = "admin_panel"              //
	ActManageAdmins Action = "manage_admins"            //
	ActAddAdmin     Action = "add_admin"                //
	ActAdminBack    Action = "back_to_admin_management" //

	ActManageCategories      Action = "manage_categories"      //
	ActAddCategory           Action = "add_category"           //
	ActEditCategory          Action = "edit_category"          //
	ActDeleteCategory        Action = "delete_category"        //
	ActSelectEditCategory    Action = "select_edit"            // select_edit_<id>
	ActConfirmDeleteCategory Action = "confirm_delete_category" // confirm_delete_category_<id>
	ActDoDeleteCategory      Action = "do_delete_category"     // do_delete_category_<id>

	ActAdminStock           Action = "admin_stock"            //
	ActAddProduct           Action = "add_product"            //
	ActEditProduct          Action = "edit_product"           // bare lists products; edit_product_<id> picks one
	ActDeleteProduct        Action = "delete_product"         //
	ActSelectCategory       Action = "select_category"        // select_category_<id>
	ActConfirmDeleteProduct Action = "confirm_delete_product" // confirm_delete_product_<id>
	ActDoDeleteProduct      Action = "do_delete_product"      // do_delete_product_<id>

	ActManageOrders   Action = "manage_orders"   //
	ActOrdersPending  Action = "orders_pending"  //
	ActOrdersAccepted Action = "orders_accepted" //
	ActOrdersRejected Action = "orders_rejected" //
	ActAcceptOrder    Action = "accept_order"    // accept_order_<id>
	ActRejectOrder    Action = "reject_order"    // reject_order_<id>
	ActCancelOrder    Action = "cancel_order"    // cancel_order_<id>
	ActFinalizeOrder  Action = "finalize_order"  // finalize_order_<id>
	ActDeleteOrder    Action = "delete_order"    // delete_order_<id>
)

// QuantityBackspace is the keypad key that removes the last digit
const QuantityBackspace = "del"

var actions = []Action{
	ActLanguage, ActConfigureBot, ActMainMenu, ActShowCatalog, ActCategory,
	ActViewCart, ActEmptyCart, ActEditCart, ActCartRemove, ActAddToCart,
	ActQuantity, ActConfirmAdd, ActCancelAdd,
	ActProcessOrder, ActPayment, ActCountry, ActVerifyAccount, ActViewOrders,
	ActAdminPanel, ActManageAdmins, ActAddAdmin, ActAdminBack,
	ActManageCategories, ActAddCategory, ActEditCategory, ActDeleteCategory,
	ActSelectEditCategory, ActConfirmDeleteCategory, ActDoDeleteCategory,
	ActAdminStock, ActAddProduct, ActEditProduct, ActDeleteProduct,
	ActSelectCategory, ActConfirmDeleteProduct, ActDoDeleteProduct,
	ActManageOrders, ActOrdersPending, ActOrdersAccepted, ActOrdersRejected,
	ActAcceptOrder, ActRejectOrder, ActCancelOrder, ActFinalizeOrder,
	ActDeleteOrder,
}

// byLength holds actions ordered longest-first so that overlapping names
// always resolve to the most specific match (confirm_delete_category
// before delete_category before category).
var byLength []Action

func init() {
	byLength = make([]Action, len(actions))
	copy(byLength, actions)
	sort.Slice(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})
}

// Token builds the wire form of an action with its arguments
func Token(action Action, args ...string) string {
	if len(args) == 0 {
		return string(action)
	}
	return string(action) + "_" + strings.Join(args, "_")
}

// TokenID builds a token whose only argument is a numeric id
func TokenID(action Action, id int64) string {
	return Token(action, strconv.FormatInt(id, 10))
}

// Parsed is a decoded callback token
type Parsed struct {
	Action Action
	Args   []string
}

// ID parses the last argument as a numeric id
func (p Parsed) ID() (int64, bool) {
	if len(p.Args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(p.Args[len(p.Args)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Arg returns the i-th argument or ""
func (p Parsed) Arg(i int) string {
	if i < 0 || i >= len(p.Args) {
		return ""
	}
	return p.Args[i]
}

// Parse decodes a token. The longest registered action name matching the
// token wins, so shared prefixes cannot shadow more specific actions.
func Parse(data string) (Parsed, bool) {
	for _, action := range byLength {
		name := string(action)
		if data == name {
			return Parsed{Action: action}, true
		}
		if strings.HasPrefix(data, name+"_") {
			rest := data[len(name)+1:]
			return Parsed{Action: action, Args: strings.Split(rest, "_")}, true
		}
	}
	return Parsed{}, false
}
