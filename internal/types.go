package internal

type InputSource string

const (
	SourceDelimited InputSource = "delimited"
	SourceXLSX      InputSource = "xlsx"
	SourceHTMLTable InputSource = "html_table"
)

// Row is one input data row keyed by header column name.
type Row map[string]string

// Get returns the cell for key, or "" when the column is absent.
func (r Row) Get(key string) string {
	return r[key]
}

// TireRecord is the fixed output schema. Field order is the serialized order.
type TireRecord struct {
	Name        string `json:"name" yaml:"name"`
	Brand       string `json:"brand" yaml:"brand"`
	Image       string `json:"image" yaml:"image"`
	Price       string `json:"price" yaml:"price"`
	Size        string `json:"size" yaml:"size"`
	Type        string `json:"type" yaml:"type"`
	Model       string `json:"model" yaml:"model"`
	LoadIndex   string `json:"load_index" yaml:"load_index"`
	SpeedRating string `json:"speed_rating" yaml:"speed_rating"`
	Studdable   string `json:"studdable" yaml:"studdable"`
}

// RecordHeaders lists the TireRecord keys in serialized order.
var RecordHeaders = []string{
	"name", "brand", "image", "price", "size", "type",
	"model", "load_index", "speed_rating", "studdable",
}

// Values returns the record fields in RecordHeaders order.
func (t TireRecord) Values() []string {
	return []string{
		t.Name, t.Brand, t.Image, t.Price, t.Size, t.Type,
		t.Model, t.LoadIndex, t.SpeedRating, t.Studdable,
	}
}

type ImportRun struct {
	ID        string
	Source    string
	RowCount  int
	CreatedAt string
}

type RunSummary struct {
	Records     int
	WithSize    int
	WithModel   int
	WithLoad    int
	Studdable   int
	DurationMs  int64
	InputSource InputSource
}
