package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashDir computes a single hash over the names and contents of all files under root.
	HashDir(root string) (string, error)
}
