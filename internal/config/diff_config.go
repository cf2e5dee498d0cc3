package config

// DiffConfig defines configuration for diff computation and display
type DiffConfig struct {
	ContextLines int    `json:"context_lines,omitempty" yaml:"context_lines,omitempty" validate:"omitempty,min=0,max=20"`
	ViewMode     string `json:"view_mode,omitempty" yaml:"view_mode,omitempty" validate:"omitempty,viewmode"`
	Theme        string `json:"theme,omitempty" yaml:"theme,omitempty" validate:"omitempty,theme"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: DefaultDiffContextLines,
		ViewMode:     DefaultDiffViewMode,
		Theme:        DefaultDiffTheme,
	}
}
