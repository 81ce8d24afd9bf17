package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/nstconf/internal/audit"
	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
	"github.com/PolarWolf314/nstconf/internal/settings"

	"github.com/BurntSushi/toml"
)

func TestSettingsList(t *testing.T) {
	dir := newTestConfigDir(t)

	t.Run("Defaults", func(t *testing.T) {
		output, err := runCLI(t, dir, "settings", "list")
		if err != nil {
			t.Fatalf("settings list failed: %v\n%s", err, output)
		}

		for _, want := range []string{"[frontend]", "v_scale", "(1-16)", "[nestopia]", "palette", "(0-10)"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected output to contain %q, got:\n%s", want, output)
			}
		}
		if strings.Contains(output, "turbo_rate") {
			t.Error("Hidden setting listed without --all")
		}
	})

	t.Run("All", func(t *testing.T) {
		output, err := runCLI(t, dir, "settings", "list", "--all")
		if err != nil {
			t.Fatalf("settings list --all failed: %v", err)
		}
		if !strings.Contains(output, "turbo_rate") {
			t.Errorf("Expected hidden setting with --all, got:\n%s", output)
		}
	})

	t.Run("Section", func(t *testing.T) {
		output, err := runCLI(t, dir, "settings", "list", "--section", "nestopia")
		if err != nil {
			t.Fatalf("settings list --section failed: %v", err)
		}
		if strings.Contains(output, "v_scale") || strings.Contains(output, "[frontend]") {
			t.Errorf("Frontend settings listed for nestopia section:\n%s", output)
		}
		if !strings.Contains(output, "ntsc_filter") {
			t.Errorf("Expected core settings, got:\n%s", output)
		}
	})

	t.Run("UnknownSection", func(t *testing.T) {
		_, err := runCLI(t, dir, "settings", "list", "--section", "video")
		if !errors.Is(err, kerrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := runCLI(t, dir, "settings", "list", "--json")
		if err != nil {
			t.Fatalf("settings list --json failed: %v", err)
		}

		var got map[string][]settings.Setting
		if err := json.Unmarshal([]byte(output), &got); err != nil {
			t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
		}
		if len(got["frontend"]) != 7 {
			t.Errorf("Expected 7 frontend settings, got %d", len(got["frontend"]))
		}
		if got["frontend"][0].Name != "v_scale" || got["frontend"][0].Val != 2 {
			t.Errorf("Unexpected first frontend setting: %+v", got["frontend"][0])
		}
		if len(got["nestopia"]) == 0 {
			t.Error("Expected core settings in JSON output")
		}
	})

	t.Run("TOML", func(t *testing.T) {
		output, err := runCLI(t, dir, "settings", "list", "--toml", "--section", "frontend")
		if err != nil {
			t.Fatalf("settings list --toml failed: %v", err)
		}

		var got map[string][]settings.Setting
		if _, err := toml.Decode(output, &got); err != nil {
			t.Fatalf("Output is not valid TOML: %v\n%s", err, output)
		}
		if len(got["frontend"]) != 7 {
			t.Errorf("Expected 7 frontend settings, got %d", len(got["frontend"]))
		}
		if _, ok := got["nestopia"]; ok {
			t.Error("Core section present despite --section frontend")
		}
	})
}

func TestSettingsGet(t *testing.T) {
	dir := newTestConfigDir(t)

	output, err := runCLI(t, dir, "settings", "get", "v_scale")
	if err != nil {
		t.Fatalf("settings get failed: %v", err)
	}
	for _, want := range []string{"'v_scale'", "(frontend)", "Initial Window Scale", "1-16", "Restart:"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}

	output, err = runCLI(t, dir, "settings", "get", "sprite_limit")
	if err != nil {
		t.Fatalf("settings get sprite_limit failed: %v", err)
	}
	if !strings.Contains(output, "(nestopia)") {
		t.Errorf("Expected core section in output, got:\n%s", output)
	}

	_, err = runCLI(t, dir, "settings", "get", "nope")
	if !errors.Is(err, kerrors.ErrSettingNotFound) {
		t.Errorf("Expected ErrSettingNotFound, got %v", err)
	}
}

func TestSettingsSet(t *testing.T) {
	dir := newTestConfigDir(t)

	output, err := runCLI(t, dir, "settings", "set", "v_scale", "3")
	if err != nil {
		t.Fatalf("settings set failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "'v_scale' set to 3") {
		t.Errorf("Expected confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "Restart nestopia") {
		t.Errorf("Expected restart notice for v_scale, got:\n%s", output)
	}

	conf := readFile(t, filepath.Join(dir, "nestopia.conf"))
	if !strings.Contains(conf, "\nv_scale = 3\n") {
		t.Errorf("nestopia.conf does not contain new value:\n%s", conf)
	}

	output, err = runCLI(t, dir, "settings", "set", "palette", "5")
	if err != nil {
		t.Fatalf("settings set palette failed: %v\n%s", err, output)
	}
	conf = readFile(t, filepath.Join(dir, "nestopia.conf"))
	if !strings.Contains(conf, "[nestopia]") || !strings.Contains(conf, "\npalette = 5\n") {
		t.Errorf("nestopia.conf does not contain core value:\n%s", conf)
	}
	if !strings.Contains(conf, "\nv_scale = 3\n") {
		t.Errorf("Earlier change was lost:\n%s", conf)
	}

	entries, err := audit.ReadEntries(dir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(entries))
	}
	if e := entries[0]; e.Operation != audit.OpSettingSet || e.Name != "v_scale" || e.Old != "2" || e.New != "3" {
		t.Errorf("Unexpected first history entry: %+v", e)
	}
	if entries[1].Section != "nestopia" {
		t.Errorf("Expected core section in history, got %+v", entries[1])
	}
}

func TestSettingsSetRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		value   string
		wantErr error
	}{
		{"UnknownSetting", "v_brightness", "1", kerrors.ErrSettingNotFound},
		{"NotANumber", "v_scale", "big", kerrors.ErrInvalidValue},
		{"OutOfRange", "v_scale", "99", kerrors.ErrValueOutOfRange},
		{"CoreOutOfRange", "favored_system", "4", kerrors.ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newTestConfigDir(t)

			output, err := runCLI(t, dir, "settings", "set", tt.setting, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v\n%s", tt.wantErr, err, output)
			}
			if _, err := os.Stat(filepath.Join(dir, "nestopia.conf")); !os.IsNotExist(err) {
				t.Error("nestopia.conf written despite rejected value")
			}
		})
	}
}

func TestSettingsReset(t *testing.T) {
	dir := newTestConfigDir(t)

	if _, err := runCLI(t, dir, "settings", "set", "m_ffspeed", "6"); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}
	if _, err := runCLI(t, dir, "settings", "set", "overclock", "1"); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}

	output, err := runCLI(t, dir, "settings", "reset")
	if err != nil {
		t.Fatalf("settings reset failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "restored to defaults") {
		t.Errorf("Expected confirmation, got:\n%s", output)
	}

	conf := readFile(t, filepath.Join(dir, "nestopia.conf"))
	for _, want := range []string{"\nm_ffspeed = 2\n", "\noverclock = 0\n"} {
		if !strings.Contains(conf, want) {
			t.Errorf("Expected %q after reset:\n%s", want, conf)
		}
	}

	entries, _ := audit.ReadEntries(dir)
	resets := map[string]audit.Entry{}
	for _, e := range entries {
		if e.Operation == audit.OpSettingReset {
			resets[e.Section+"."+e.Name] = e
		}
	}
	if len(resets) != 2 {
		t.Fatalf("Expected one reset entry per changed setting, got %+v", entries)
	}
	if e := resets["frontend.m_ffspeed"]; e.Old != "6" || e.New != "2" {
		t.Errorf("m_ffspeed reset entry = %+v, want 6 → 2", e)
	}
	if e := resets["nestopia.overclock"]; e.Old != "1" || e.New != "0" {
		t.Errorf("overclock reset entry = %+v, want 1 → 0", e)
	}
}

func TestSettingsPath(t *testing.T) {
	dir := newTestConfigDir(t)

	output, err := runCLI(t, dir, "settings", "path")
	if err != nil {
		t.Fatalf("settings path failed: %v", err)
	}
	for _, want := range []string{dir, "nestopia.conf", "input.conf", "history.jsonl", "(not created yet)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected configuration directory to be created: %v", err)
	}
}
