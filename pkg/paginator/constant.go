package paginator

const (
	// DefaultPage is used when the requested page is missing or below 1.
	DefaultPage = 1
	// DefaultLimit is used when the requested page size is missing or below 1.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)
