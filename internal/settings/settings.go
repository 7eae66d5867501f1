package settings

// Settings are the user preferences saved between runs.
type Settings struct {
	// Login is the portal account used when no --login flag is given
	Login string `json:"login,omitempty"`
	// Proxy is the proxy url used when no --proxy flag is given
	Proxy string `json:"proxy,omitempty"`
	// Output is the default publication destination
	Output string `json:"output,omitempty"`
}

func Defaults() Settings {
	return Settings{
		Output: "local://.",
	}
}

func NewSettingsStore() *Store[Settings] {
	return NewStore(Defaults())
}
