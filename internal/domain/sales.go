package domain

// Seller is a member of the sales staff.
type Seller struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
}

// FullName returns the display name used in reports.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Product is a catalog entry identified by its SKU.
type Product struct {
	SKU           string  `json:"sku" yaml:"sku" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price"`
	SalePrice     float64 `json:"sale_price" yaml:"sale_price"`
}

// PurchaseItem is a single line of a receipt.
type PurchaseItem struct {
	SKU      string `json:"sku" yaml:"sku" validate:"required"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	// SalePrice overrides the catalog price when set.
	SalePrice *float64 `json:"sale_price,omitempty" yaml:"sale_price,omitempty"`
	Discount  float64  `json:"discount" yaml:"discount"` // percent, 0-100
}

// PurchaseRecord is one receipt issued by one seller.
type PurchaseRecord struct {
	SellerID string         `json:"seller_id" yaml:"seller_id" validate:"required"`
	Items    []PurchaseItem `json:"items" yaml:"items" validate:"dive"`
}

// Dataset is the full input of an analysis run.
type Dataset struct {
	Sellers         []Seller         `json:"sellers" yaml:"sellers" validate:"dive"`
	Products        []Product        `json:"products" yaml:"products" validate:"dive"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records" yaml:"purchase_records" validate:"dive"`
}

// DataSource tells a repository where to find a dataset. Either DatasetPath
// or all three part paths must be set.
type DataSource struct {
	DatasetPath  string
	SellersPath  string
	ProductsPath string
	RecordsPath  string
}

// IsSplit reports whether the dataset is spread over separate part files.
func (s DataSource) IsSplit() bool {
	return s.DatasetPath == ""
}
