package extraction

import "time"

// RunInput - Input for one extraction batch
type RunInput struct {
	PDFDir       string
	OutputFile   string
	Upload       bool
	ObjectPrefix string
}

// RunOutput - Result of one extraction batch
type RunOutput struct {
	OutputFile string
	Extracted  int
	Skipped    []string // files that failed to parse
	Object     string   // object key of the uploaded JSON, empty when not uploaded
	Duration   time.Duration
}
