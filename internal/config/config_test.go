package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gosap/internal/setup"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gosap.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.Alpha != 90 || conf.Method != "wood-armer" || conf.Units != "kip_ft_F" {
		t.Errorf("defaults = %+v", conf)
	}
	if conf.Average.ProgressEvery != 1000 {
		t.Errorf("progress_every = %d, want 1000", conf.Average.ProgressEvery)
	}

	opts, err := conf.ResultOptions()
	if err != nil {
		t.Fatalf("ResultOptions() error = %v", err)
	}
	if opts.Units != setup.KipFtF || opts.NLStatic != setup.Envelope || opts.MVCombo != setup.ComboEnvelope {
		t.Errorf("ResultOptions() = %+v", opts)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
units: 6
alpha: 75
method: simple
results:
  nl_static: last-step
  ms_static: 2
  mv_combo: correspondence
  load_cases: [DEAD, LIVE]
average:
  group_by: [Joint, LoadCase]
  fields: [M11, M22, M12]
logging:
  level: debug
`)
	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.Alpha != 75 || conf.Method != "simple" {
		t.Errorf("conf = %+v", conf)
	}
	if !reflect.DeepEqual(conf.Average.GroupBy, []string{"Joint", "LoadCase"}) {
		t.Errorf("group_by = %v", conf.Average.GroupBy)
	}
	if conf.LoggingOptions().Level != "debug" {
		t.Errorf("logging level = %q", conf.Logging.Level)
	}

	opts, err := conf.ResultOptions()
	if err != nil {
		t.Fatalf("ResultOptions() error = %v", err)
	}
	want := setup.Options{
		Units:     setup.KNMC,
		NLStatic:  setup.LastStep,
		MSStatic:  setup.StepByStep,
		MVCombo:   setup.Correspondence,
		LoadCases: []string{"DEAD", "LIVE"},
	}
	if opts.Units != want.Units || opts.NLStatic != want.NLStatic || opts.MSStatic != want.MSStatic ||
		opts.MVCombo != want.MVCombo || !reflect.DeepEqual(opts.LoadCases, want.LoadCases) {
		t.Errorf("ResultOptions() = %+v, want %+v", opts, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "alpha: 75\n")
	t.Setenv("GOSAP_ALPHA", "60")
	t.Setenv("GOSAP_LOGGING_LEVEL", "warn")

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.Alpha != 60 {
		t.Errorf("alpha = %g, want 60 from the environment", conf.Alpha)
	}
	if conf.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", conf.Logging.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestResultOptionsInvalidUnits(t *testing.T) {
	path := writeConfig(t, "units: furlongs\n")
	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	_, err = conf.ResultOptions()
	var ce *setup.ConfigurationError
	if !errors.As(err, &ce) {
		t.Errorf("ResultOptions() error = %v, want ConfigurationError", err)
	}
}
