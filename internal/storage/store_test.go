package storage

import (
	"testing"

	"github.com/tarunkumar1111/three-body-problem/internal/config"
)

func sampleRows() []Row {
	return []Row{
		{Frame: 0, Body: 0, X: 1.5, Y: 2.5, VX: 0.1, VY: 0.2},
		{Frame: 0, Body: 1, X: 3.5, Y: 4.5, VX: -0.1, VY: 0.2},
		{Frame: 1, Body: 0, X: 1.6, Y: 2.7, VX: 0.1, VY: 0.2},
		{Frame: 1, Body: 1, X: 3.4, Y: 4.7, VX: -0.1, VY: 0.2},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg := *config.Default()
	metricsOut := map[string]float64{"energy": -12.5, "momentum": 2.0}

	runID, err := st.Save(cfg, sampleRows(), metricsOut)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("id = %s, want %s", meta.ID, runID)
	}
	if meta.Frames != 2 || meta.Bodies != 2 {
		t.Errorf("frames/bodies = %d/%d, want 2/2", meta.Frames, meta.Bodies)
	}
	if meta.Config.MaxBodies != cfg.MaxBodies {
		t.Errorf("config did not round trip: %d", meta.Config.MaxBodies)
	}
	if meta.Metrics["energy"] != -12.5 {
		t.Errorf("metrics did not round trip: %v", meta.Metrics)
	}

	rows, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("LoadFrames failed: %v", err)
	}
	want := sampleRows()
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i := range rows {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store has %d runs", len(runs))
	}

	if _, err := st.Save(*config.Default(), sampleRows(), nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestList_MissingBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("run_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}
