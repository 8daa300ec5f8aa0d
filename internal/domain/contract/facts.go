package contract

import "context"

// FactsFetcher fetches one random fact from the content provider.
type FactsFetcher interface {
	RandomFact(ctx context.Context) (string, error)
}
