package domain

// Command is an external process invocation.
type Command struct {
	// Name is the executable, resolved through PATH when not absolute.
	Name string

	// Args are passed to the executable verbatim.
	Args []string

	// Dir is the working directory; empty means the current directory.
	Dir string

	// Env holds "KEY=VALUE" overrides applied on top of the process environment.
	Env []string
}

// Argv returns the full command line.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// InstallerBuild describes one constructor invocation.
type InstallerBuild struct {
	SpecDir   string
	Platform  Platform
	OutputDir string
	ExtraArgs []string
}

// MetapackageBuild describes one conda metapackage invocation.
type MetapackageBuild struct {
	Environment    MetapackageEnvironment
	Home           string
	License        string
	Summary        string
	CondaBuildRoot string
	OutputDir      string
	ExtraArgs      []string
}
