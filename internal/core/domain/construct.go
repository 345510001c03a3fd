package domain

// Installer types accepted by constructor.
const (
	InstallerTypeAll = "all"
)

// ChannelPriorityStrict is the conda channel priority written to the installer condarc.
const ChannelPriorityStrict = "strict"

// ConstructDescriptor is the construct.yaml consumed by conda constructor.
type ConstructDescriptor struct {
	Name                  string        `yaml:"name"`
	Version               string        `yaml:"version"`
	Company               string        `yaml:"company"`
	Channels              []string      `yaml:"channels"`
	Specs                 []string      `yaml:"specs"`
	UserRequestedSpecs    []string      `yaml:"user_requested_specs"`
	InitializeByDefault   bool          `yaml:"initialize_by_default"`
	InstallerType         string        `yaml:"installer_type"`
	KeepPkgs              bool          `yaml:"keep_pkgs"`
	LicenseFile           string        `yaml:"license_file"`
	RegisterPythonDefault bool          `yaml:"register_python_default"`
	WriteCondarc          bool          `yaml:"write_condarc"`
	Condarc               CondarcConfig `yaml:"condarc"`
	PostInstall           string        `yaml:"post_install"`
	NSISTemplate          string        `yaml:"nsis_template,omitempty"`
	WelcomeImage          string        `yaml:"welcome_image,omitempty"`
	HeaderImage           string        `yaml:"header_image,omitempty"`
	IconImage             string        `yaml:"icon_image,omitempty"`
}

// CondarcConfig is the .condarc written into the installed environment.
type CondarcConfig struct {
	Channels        []string `yaml:"channels"`
	ChannelPriority string   `yaml:"channel_priority"`
}

// MetapackageEnvironment is the rendered environment file used to build the metapackage.
type MetapackageEnvironment struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Platform     Platform          `yaml:"platform"`
	Channels     []string          `yaml:"channels"`
	Dependencies []string          `yaml:"dependencies"`
	Variables    map[string]string `yaml:"variables,omitempty"`
}

// WindowsStateVariables are cleared in the conda-meta state of Windows
// installs so stale values from a previous install do not leak into the new one.
var WindowsStateVariables = []string{
	"GR_PREFIX",
	"GRC_BLOCKS_PATH",
	"UHD_PKG_PATH",
	"VOLK_PREFIX",
}

// StateVariables returns the environment variables to record for a platform.
func StateVariables(platform Platform) map[string]string {
	if !platform.IsWindows() {
		return nil
	}
	vars := make(map[string]string, len(WindowsStateVariables))
	for _, name := range WindowsStateVariables {
		vars[name] = ""
	}
	return vars
}
