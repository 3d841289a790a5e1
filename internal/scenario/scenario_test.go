package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	flow "github.com/grindlemire/go-flow"
)

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("items:\n  - {width: 10, height: 10}\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if s.Version != Version {
		t.Errorf("Version = %d, want %d", s.Version, Version)
	}
	cfg := s.Config()
	if cfg.Distribution != flow.LeftToRight || cfg.Alignment != flow.AlignStart ||
		cfg.AlignScope != flow.AlignToContainer || cfg.AutoSizePolicy != flow.AutoSizePerItem ||
		cfg.Type != flow.FlowLayout {
		t.Errorf("Config() = %+v, want defaults", cfg)
	}
	if cfg.WrapCount != nil {
		t.Errorf("WrapCount = %d, want automatic", *cfg.WrapCount)
	}
	if len(s.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1", len(s.Items))
	}
}

func TestParse_Overrides(t *testing.T) {
	data := `
container: {width: 300, height: 100, auto_size: true, max_size: {width: 0, height: 80}}
layout:
  margin: 2
  padding: 4
  wrap_count: 3
  distribution: top-to-bottom
  alignment: center
  align_scope: line
  auto_size_policy: per-batch
items:
  - {name: a, width: 10, height: 20, repeat: 2, dock: left}
resizes:
  - {width: 50, height: 60}
`
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cfg := s.Config()
	if cfg.Margin != 2 || cfg.Padding != 4 {
		t.Errorf("margin/padding = %d/%d, want 2/4", cfg.Margin, cfg.Padding)
	}
	if cfg.WrapCount == nil || *cfg.WrapCount != 3 {
		t.Errorf("WrapCount = %v, want 3", cfg.WrapCount)
	}
	if cfg.Distribution != flow.TopToBottom || cfg.Alignment != flow.AlignCenter ||
		cfg.AlignScope != flow.AlignToLine || cfg.AutoSizePolicy != flow.AutoSizePerBatch {
		t.Errorf("Config() = %+v", cfg)
	}
	if !s.Container.AutoSize || s.Container.MaxSize == nil || s.Container.MaxSize.Height != 80 {
		t.Errorf("Container = %+v", s.Container)
	}
	if s.Items[0].Dock != flow.DockLeft || s.Items[0].Repeat != 2 {
		t.Errorf("Items[0] = %+v", s.Items[0])
	}
	if len(s.Resizes) != 1 || s.Resizes[0] != (Extent{Width: 50, Height: 60}) {
		t.Errorf("Resizes = %+v", s.Resizes)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		data string
		want string
	}

	tests := map[string]tc{
		"unknown field": {
			data: "layout: {gap: 3}\n",
			want: "field gap not found",
		},
		"bad distribution": {
			data: "layout: {distribution: diagonal}\n",
			want: "not a valid distribution",
		},
		"bad dock": {
			data: "items:\n  - {width: 1, height: 1, dock: middle}\n",
			want: "not a valid dock",
		},
		"wrong version": {
			data: "version: 2\n",
			want: "invalid scenario",
		},
		"negative item": {
			data: "items:\n  - {width: -1, height: 1}\n",
			want: "invalid scenario",
		},
		"negative resize": {
			data: "resizes:\n  - {width: 10, height: -10}\n",
			want: "invalid scenario",
		},
		"malformed": {
			data: "items: [\n",
			want: "failed to decode scenario",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if len(s.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(s.Items))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "row.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - {width: 5, height: 5}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err != nil {
		t.Errorf("Load() error: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("Load() error = %v, want it to name the file", err)
	}
}

func TestDump(t *testing.T) {
	s, err := Parse([]byte("layout: {distribution: top-to-bottom}\n"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(s)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	for _, want := range []string{"distribution: top-to-bottom", "alignment: start", "version: 1"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() missing %q:\n%s", want, data)
		}
	}

	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Dump()) error: %v", err)
	}
	if again.Config().Distribution != flow.TopToBottom {
		t.Errorf("distribution lost in round trip")
	}
}

func TestProblems(t *testing.T) {
	type tc struct {
		data string
		want int
	}

	tests := map[string]tc{
		"clean": {
			data: "container: {width: 100, height: 100}\nitems:\n  - {width: 10, height: 10}\n",
			want: 0,
		},
		"negative layout values": {
			data: "container: {width: 100, height: 100}\nlayout: {margin: -1, padding: -2, wrap_count: 0}\n",
			want: 3,
		},
		"unmeasured container": {
			data: "items:\n  - {width: 10, height: 10}\n",
			want: 1,
		},
		"unmeasured container with measurement": {
			data: "container: {measured_size: {width: 50, height: 50}}\n",
			want: 0,
		},
		"conflicting constraints": {
			data: "container: {width: 10, height: 10, auto_size: true, min_size: {width: 50, height: 50}, max_size: {width: 40, height: 0}}\n",
			want: 1,
		},
		"constraints without auto-size": {
			data: "container: {width: 10, height: 10, min_size: {width: 5, height: 5}}\n",
			want: 1,
		},
		"empty item": {
			data: "container: {width: 10, height: 10}\nitems:\n  - {name: ghost, width: 0, height: 4}\n",
			want: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := len(multierr.Errors(s.Problems())); got != tt.want {
				t.Errorf("Problems() = %v, want %d problems", s.Problems(), tt.want)
			}
		})
	}
}
