package raster

// Backend is an interface for rasterization backends.
// This abstraction allows swapping the rendering library
// (e.g., golang.org/x/image/font/opentype vs a platform rasterizer).
//
// The default implementation uses golang.org/x/image/font/opentype.
type Backend interface {
	// Open parses font data and instantiates a face.
	Open(data []byte, size float64, style Style, cfg Config) (Face, error)
}

// backendRegistry holds registered rasterization backends.
// The default backend is "ximage" (golang.org/x/image).
var backendRegistry = map[string]Backend{
	"ximage": &ximageBackend{},
}

// defaultBackendName is the name of the default backend.
const defaultBackendName = "ximage"

// RegisterBackend registers a custom rasterization backend.
// This allows users to provide their own rendering implementation.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// getBackend returns the backend by name, or the default if not found.
func getBackend(name string) Backend {
	if b, ok := backendRegistry[name]; ok {
		return b
	}
	return backendRegistry[defaultBackendName]
}
