package raster

// Option configures face creation.
type Option func(*Config)

// Config holds configuration for face creation. It is passed through
// to the backend, so custom backends see the same knobs.
type Config struct {
	// Backend names the rasterization backend. Empty or unknown names
	// fall back to the default ("ximage").
	Backend string

	// Hinting is the grid-fitting mode for natural-spacing rendering.
	// Tight-spacing rendering is always unhinted.
	Hinting Hinting

	// DPI is the dot-per-inch resolution used to convert points to
	// pixels.
	DPI float64
}

// defaultConfig returns the default face configuration.
func defaultConfig() Config {
	return Config{
		Backend: defaultBackendName,
		Hinting: HintingFull,
		DPI:     72,
	}
}

// WithBackend selects the rasterization backend by name.
func WithBackend(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Backend = name
		}
	}
}

// WithHinting sets the hinting mode for natural-spacing rendering.
func WithHinting(h Hinting) Option {
	return func(c *Config) {
		c.Hinting = h
	}
}

// WithDPI sets the rendering resolution in dots per inch.
func WithDPI(dpi float64) Option {
	return func(c *Config) {
		if dpi > 0 {
			c.DPI = dpi
		}
	}
}
