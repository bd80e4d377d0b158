package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/tsawler/lattice/export"
	"github.com/tsawler/lattice/tables"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tolerance != 2 {
		t.Errorf("expected tolerance 2, got %g", cfg.Tolerance)
	}
	if cfg.Flavor != "lattice" || cfg.Format != "csv" || cfg.Encoding != "utf-8" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := Load(viper.New(), "")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Proposal.MinLineLength != 10 {
			t.Errorf("expected min_line_length 10, got %g", cfg.Proposal.MinLineLength)
		}
	})

	t.Run("loads from config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "lattice.yaml")
		configContent := `
tolerance: 3.5
flavor: stream
format: xlsx
compress: true
proposal:
  min_line_length: 4
`
		if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg, err := Load(viper.New(), configFile)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Tolerance != 3.5 || cfg.Flavor != "stream" || !cfg.Compress {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if f, _ := cfg.ExportFormat(); f != export.Excel {
			t.Errorf("expected excel format, got %v", f)
		}
		if cfg.Proposal.MinLineLength != 4 || cfg.Proposal.AlignmentTolerance != 2 {
			t.Errorf("proposal = %+v", cfg.Proposal)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LATTICE_TOLERANCE", "0.5")
		t.Setenv("LATTICE_PROPOSAL_ALIGNMENT_TOLERANCE", "7")

		cfg, err := Load(viper.New(), "")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Tolerance != 0.5 {
			t.Errorf("expected tolerance 0.5, got %g", cfg.Tolerance)
		}
		if cfg.Proposal.AlignmentTolerance != 7 {
			t.Errorf("expected alignment tolerance 7, got %g", cfg.Proposal.AlignmentTolerance)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("LATTICE_FLAVOR", "network")
		if _, err := Load(viper.New(), ""); err == nil {
			t.Error("expected error for unknown flavor")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }},
		{"unknown format", func(c *Config) { c.Format = "parquet" }},
		{"unknown encoding", func(c *Config) { c.Encoding = "klingon" }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }},
		{"negative proposal", func(c *Config) { c.Proposal.MinLineLength = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Flavor = "stream"
	cfg.Tolerance = 1.5
	cfg.LogLevel = "debug"

	tc, err := cfg.TablesConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Flavor != tables.Stream || tc.JointTolerance != 1.5 {
		t.Errorf("TablesConfig() = %+v", tc)
	}

	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v", level, err)
	}

	gp := cfg.GridProposer()
	if gp.AlignmentTolerance != 2 || gp.MinLineLength != 10 {
		t.Errorf("GridProposer() = %+v", gp)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() of written default failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("round trip = %+v, want %+v", cfg, DefaultConfig())
	}
}
