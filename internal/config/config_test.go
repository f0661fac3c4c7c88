package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *opts != *NewDefault() {
		t.Errorf("Expected defaults, got %+v", *opts)
	}
}

func TestLoad_OverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.json")
	if err := os.WriteFile(path, []byte(`{"width": 400, "hud": true, "gradient_end": "#ff0000"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if opts.Width != 400 || !opts.HUD || opts.GradientEnd != "#ff0000" {
		t.Errorf("File values not applied: %+v", *opts)
	}
	if opts.Height != WindowHeight || opts.GradientStart != GradientStart {
		t.Errorf("Defaults lost for absent fields: %+v", *opts)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"width": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr bool
	}{
		{"Defaults", func(o *Options) {}, false},
		{"Zero width", func(o *Options) { o.Width = 0 }, true},
		{"Negative height", func(o *Options) { o.Height = -1 }, true},
		{"Bad background", func(o *Options) { o.Background = "white" }, true},
		{"Bad gradient start", func(o *Options) { o.GradientStart = "#12" }, true},
		{"Lowercase hex", func(o *Options) { o.GradientEnd = "#06ae3c" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewDefault()
			tt.mutate(opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
