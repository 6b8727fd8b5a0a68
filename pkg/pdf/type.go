package pdf

// extractorImpl implements IExtractor with github.com/ledongthuc/pdf.
type extractorImpl struct{}
