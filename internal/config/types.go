package config

// AppConfig holds the [app] section.
type AppConfig struct {
	// AutoStartAtLogin starts pivot when the user logs in. Default false.
	AutoStartAtLogin bool
}

// DefaultApp returns the all-defaults [app] record.
func DefaultApp() AppConfig {
	return AppConfig{}
}

// AgentLayerConfig holds the [agentLayer] section.
type AgentLayerConfig struct {
	// Enabled turns the agent overlay on globally. Default false.
	// Projects may override it per entry.
	Enabled bool
}

// DefaultAgentLayer returns the all-defaults [agentLayer] record.
func DefaultAgentLayer() AgentLayerConfig {
	return AgentLayerConfig{}
}

// ChromeConfig holds the [chrome] section.
type ChromeConfig struct {
	// PinnedTabs are URLs pinned in every project window. Default empty.
	PinnedTabs []string

	// DefaultTabs are URLs opened when a project has no saved tabs.
	// Default empty.
	DefaultTabs []string

	// OpenGitRemote opens the project's git remote as a tab. Default false.
	OpenGitRemote bool
}

// DefaultChrome returns the all-defaults [chrome] record.
func DefaultChrome() ChromeConfig {
	return ChromeConfig{}
}

// IDE and justification positions accepted by the [layout] section.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// LayoutConfig holds the [layout] section. All numeric bounds are enforced
// at parse time; a returned LayoutConfig always satisfies them.
type LayoutConfig struct {
	// SmallScreenThreshold is the display diagonal (inches) below which the
	// small-screen layout is used. Must be > 0. Default 24.
	SmallScreenThreshold float64

	// WindowHeight is the managed window height as a percentage of the
	// screen. Must be in [1, 100]. Default 90.
	WindowHeight int

	// MaxWindowWidth is the widest a managed window may grow, in inches.
	// Must be > 0. Default 18.
	MaxWindowWidth float64

	// IDEPosition places the IDE window left or right. Default left.
	IDEPosition string

	// Justification packs the window group toward left or right.
	// Default right.
	Justification string

	// MaxGap is the largest gap between windows as a percentage of the
	// screen. Must be in [0, 100]. Default 10.
	MaxGap int
}

// DefaultLayout returns the all-defaults [layout] record.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		SmallScreenThreshold: 24,
		WindowHeight:         90,
		MaxWindowWidth:       18,
		IDEPosition:          PositionLeft,
		Justification:        PositionRight,
		MaxGap:               10,
	}
}

// ProjectConfig is one user-declared project.
type ProjectConfig struct {
	// ID is derived by normalizing Name. Always non-empty.
	ID string

	// Name is the display name, as declared.
	Name string

	// Path is the project directory.
	Path string

	// Remote is the validated remote authority string, or empty for a
	// local-only project.
	Remote string

	// Color is the project accent color as #RRGGBB hex.
	Color string

	// AgentLayer overrides the global agent-layer setting when non-nil.
	AgentLayer *bool

	// PinnedTabs override the global pinned tabs when non-nil.
	PinnedTabs []string

	// DefaultTabs override the global default tabs when non-nil.
	DefaultTabs []string
}

// Config is the root configuration. It is constructed once per load and is
// immutable afterwards; consumers may share it freely across goroutines.
type Config struct {
	App        AppConfig
	AgentLayer AgentLayerConfig
	Chrome     ChromeConfig
	Layout     LayoutConfig

	// Projects preserves declaration order exactly; the order is a
	// tie-break in ranking.
	Projects []ProjectConfig
}

// LoadResult is the outcome of parsing a configuration document.
type LoadResult struct {
	// Config is nil exactly when the document failed to parse at the
	// syntax level.
	Config *Config `json:"config,omitempty"`

	// Findings are the content-level diagnostics, in discovery order.
	Findings Findings `json:"findings"`

	// Projects mirrors Config.Projects and may carry partial data even
	// when Config is nil.
	Projects []ProjectConfig `json:"projects"`

	// HasParseError is true only for syntax-level failures.
	HasParseError bool `json:"hasParseError"`
}
