package ports

import (
	"context"

	"github.com/ryanvolz/radioconda/internal/core/domain"
)

// Resolver pins an environment specification for each requested platform.
//
// The result holds one environment per request spec, in request order.
// Implementations call out to an external solver; the call may be slow and
// may hit the network. Failures are fatal and not retried.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	Resolve(ctx context.Context, req domain.ResolveRequest) ([]*domain.ResolvedEnvironment, error)
}
