package fontpack

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	if opts.Size != 16 {
		t.Errorf("Size = %v, want 16", opts.Size)
	}
	if !opts.Antialias {
		t.Error("Antialias = false by default")
	}
	if opts.Monospace {
		t.Error("Monospace = true by default")
	}
	if opts.ShapeWorkers < 1 {
		t.Errorf("ShapeWorkers = %d, want at least 1", opts.ShapeWorkers)
	}
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"zero size", func(o *Options) { o.Size = 0 }, "Size"},
		{"negative size", func(o *Options) { o.Size = -4 }, "Size"},
		{"negative workers", func(o *Options) { o.ShapeWorkers = -1 }, "ShapeWorkers"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			c.mutate(&opts)
			var cfgErr *ConfigError
			if err := opts.Validate(); !errors.As(err, &cfgErr) || cfgErr.Field != c.field {
				t.Errorf("err = %v, want ConfigError on %s", err, c.field)
			}
		})
	}
}

func TestOptionsRepertoire(t *testing.T) {
	opts := DefaultOptions()
	if got := opts.repertoire().Len(); got != 95 {
		t.Errorf("default repertoire Len = %d, want 95", got)
	}

	opts.ExtendedCharSet = []rune{'ø'}
	if rep := opts.repertoire(); !rep.Contains('ø') {
		t.Error("extended char set was not appended")
	}

	custom := NewRepertoire([]rune("ag"), "a", "a", "g")
	opts.Repertoire = custom
	if opts.repertoire() != custom {
		t.Error("explicit repertoire was not used")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Size", Reason: "must be positive"}
	want := "fontpack: invalid config.Size: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
