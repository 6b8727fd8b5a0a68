package dialogue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply runs one turn through the decision chain and returns the single reply.
	// Only validation failures are returned as errors; every other failure becomes a degraded reply.
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
}
