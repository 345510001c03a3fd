package ports

// Patcher computes and applies line-granularity text patches.
//
//go:generate go run go.uber.org/mock/mockgen -source=patcher.go -destination=mocks/mock_patcher.go -package=mocks
type Patcher interface {
	// Diff returns a serialized patch turning original into updated.
	Diff(original, updated string) (string, error)

	// Apply applies a serialized patch to target. It returns
	// domain.ErrTemplatePatchConflict if any hunk fails to apply.
	Apply(patch, target string) (string, error)
}
