package hefesto

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(Te *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Groups) != 15 {
		Te.Errorf("got %d phase groups, want 15", len(cfg.Groups))
	}
	var sp *PhaseGroup
	for i := range cfg.Groups {
		if cfg.Groups[i].ID == "sp" {
			sp = &cfg.Groups[i]
		}
	}
	if sp == nil {
		Te.Fatal("no sp group")
	}
	//the spinel solution's natural key is taken by the spinel endmember
	if sp.Resolved() != "sps" {
		Te.Errorf("sp resolves to %q, want sps", sp.Resolved())
	}
	ol := cfg.Groups[0]
	if ol.ID != "ol" || ol.Resolved() != "ol" {
		Te.Errorf("ol group wrong: %+v", ol)
	}
	if len(cfg.Standalone) != 13 {
		Te.Errorf("got %d standalone minerals, want 13", len(cfg.Standalone))
	}
}

func TestLoadConfigOverride(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "override.yaml")
	yml := "dataset-id: TEST1\ngroups:\n  - id: ol\n    name: Olivine\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		Te.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.DatasetID != "TEST1" {
		Te.Errorf("dataset id: got %q", cfg.DatasetID)
	}
	if cfg.T0 != "300.0" {
		Te.Errorf("T0 default lost: %q", cfg.T0)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].Type != regularSolution {
		Te.Errorf("group list not replaced or type not defaulted: %+v", cfg.Groups)
	}
}

func TestLoadConfigDefaultPath(Te *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.DatasetID != "SLB24" {
		Te.Errorf("dataset id: got %q", cfg.DatasetID)
	}
}
