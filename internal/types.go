package internal

// Field is a canonical catalog attribute that heterogeneous supplier
// columns are mapped onto.
type Field string

const (
	FieldCode      Field = "codigo"
	FieldProduct   Field = "producto"
	FieldBrand     Field = "marca"
	FieldModel     Field = "modelo"
	FieldPrice     Field = "precio"
	FieldListPrice Field = "lista_precio"
)

// RawGrid holds one sheet exactly as read from a workbook: ordered rows of
// untyped cells, no header assumed.
type RawGrid [][]string

// ColumnMap resolves canonical fields to the raw header label matched in a
// given sheet. A missing key means no accepted synonym was present.
type ColumnMap map[Field]string

type CatalogRow struct {
	UID        string   `json:"uid"`
	Source     string   `json:"proveedor"`
	Usage      string   `json:"uso"`
	Code       string   `json:"codigo"`
	Product    string   `json:"producto"`
	Brand      string   `json:"marca"`
	Model      string   `json:"modelo"`
	Price      *float64 `json:"precio"`
	ListPrice  string   `json:"lista_precio"`
	SearchText string   `json:"texto_busqueda"`
	Label      string   `json:"label"`
}

// Catalog is the assembled product list, ordered by file name, then sheet,
// then row. It is rebuilt whole on every ingestion pass.
type Catalog []CatalogRow

type QuoteInput struct {
	Cotizador      string  `json:"cotizador"`
	Cliente        string  `json:"cliente"`
	Producto       string  `json:"producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

type QuoteRow struct {
	ID             int64   `json:"id"`
	Cotizador      string  `json:"cotizador"`
	Cliente        string  `json:"cliente"`
	Producto       string  `json:"producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Total          float64 `json:"total"`
	CreatedAt      string  `json:"created_at"`
}
