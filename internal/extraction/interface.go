package extraction

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Run extracts every PDF of the input folder into a single {filename: text} JSON file.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}
