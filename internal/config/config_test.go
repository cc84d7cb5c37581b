package config_test

import (
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/jot/internal/config"
	"go.followtheprocess.codes/test"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string        // Name of the test case and the testdata file
		want    config.Config // Expected config
		wantErr bool          // Whether Load should fail
	}{
		{
			name: "full.toml",
			want: config.Config{
				Debug: true,
				REPL:  config.REPL{Prompt: ">> "},
			},
		},
		{
			name: "partial.toml",
			want: config.Config{
				Debug: true,
				REPL:  config.REPL{Prompt: "jot> "},
			},
		},
		{
			name: "missing.toml",
			want: config.Default(),
		},
		{
			name:    "unknown.toml",
			wantErr: true,
		},
		{
			name:    "bad.toml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(filepath.Join("testdata", tt.name))
			test.WantErr(t, err, tt.wantErr)

			if !tt.wantErr {
				test.Equal(t, cfg, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	test.Equal(t, cfg.Debug, false)
	test.Equal(t, cfg.REPL.Prompt, "jot> ")
}
