package session

// Wizard is the state of one multi-step flow. Exactly one wizard can be
// active per chat; each variant carries only its own fields, so cancelling
// or finishing a flow can never leak scratch data into another one.
//
// Transitions always replace the wizard with a fresh value - wizards are
// treated as immutable once stored.
type Wizard interface {
	wizard()
}

// AdminLogin waits for the one-time admin password after /admin
type AdminLogin struct{}

// OwnerSetup collects the three initial admin passwords and then the
// first category, one message at a time
type OwnerSetup struct {
	Passwords    []string
	CategoryName string // set once the name arrives; the icon comes next
	NamingPhase  bool   // passwords done, now collecting the first category
}

// CategoryCreate collects name then icon for a new category
type CategoryCreate struct {
	Name string // empty until the name step completes
}

// CategoryEdit collects the replacement name then icon
type CategoryEdit struct {
	CategoryID int64
	Name       string
}

// ProductStep enumerates the product wizard steps
type ProductStep int

const (
	ProductName ProductStep = iota
	ProductPrice
	ProductPhoto
)

// ProductCreate collects name, price and photo for a new product
type ProductCreate struct {
	CategoryID int64
	Step       ProductStep
	Name       string
	Price      float64
}

// ProductEdit mirrors ProductCreate for an existing product, carrying
// over the product's current category
type ProductEdit struct {
	ProductID  int64
	CategoryID int64
	Step       ProductStep
	Name       string
	Price      float64
}

// CartQuantity accumulates keypad digits for one product
type CartQuantity struct {
	ProductID int64
	Buffer    string
}

// Checkout walks payment method, country and free-text address
type Checkout struct {
	PaymentMethod   string
	Country         string
	AwaitingAddress bool
}

// Verification collects the Instagram handle and then the photo
type Verification struct {
	Instagram     string
	AwaitingPhoto bool
}

func (AdminLogin) wizard()     {}
func (OwnerSetup) wizard()     {}
func (CategoryCreate) wizard() {}
func (CategoryEdit) wizard()   {}
func (ProductCreate) wizard()  {}
func (ProductEdit) wizard()    {}
func (CartQuantity) wizard()   {}
func (Checkout) wizard()       {}
func (Verification) wizard()   {}
