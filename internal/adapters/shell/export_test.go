package shell

var (
	ResolveEnvironment = resolveEnvironment
	LookPath           = lookPath
)

// NewLineWriter exposes lineWriter for tests.
func NewLineWriter(emit func(string)) interface {
	Write(p []byte) (int, error)
	Flush()
} {
	return &lineWriter{emit: emit}
}
