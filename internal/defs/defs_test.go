package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreepStatsFor(t *testing.T) {
	tests := []struct {
		sides int
		hp    int
		speed float64
	}{
		{6, 12, 48},
		{5, 10, 56},
		{4, 8, 64},
		{3, 6, 72},
	}
	for _, tt := range tests {
		got := CreepStatsFor(tt.sides)
		if got.HP != tt.hp || got.Speed != tt.speed {
			t.Errorf("CreepStatsFor(%d) = hp %d speed %f, want hp %d speed %f", tt.sides, got.HP, got.Speed, tt.hp, tt.speed)
		}
		if got.Radius != 16 {
			t.Errorf("CreepStatsFor(%d).Radius = %f, want 16", tt.sides, got.Radius)
		}
	}
	if CreepStatsFor(0).HP != 1 {
		t.Error("hp must never drop below 1")
	}
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary(PixelTower, TowerDefinition{Key: "pixel", Name: "dup"})
	if lib.Len() != 1 {
		t.Fatalf("Len = %d, want 1", lib.Len())
	}
	if d, ok := lib.Get("pixel"); !ok || d.Name != "Pixel Tower" {
		t.Errorf("Get(pixel) = %+v, %v", d, ok)
	}
	if _, ok := lib.Get("laser"); ok {
		t.Error("unexpected definition for laser")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownTower) {
			t.Errorf("MustGet panic = %v, want ErrUnknownTower", r)
		}
	}()
	lib.MustGet("laser")
}

func TestLoadTowerDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "towers.json")
	data := `[
		{"key":"pixel","name":"Pixel Tower","cost":25,"range":160,"fire_rate":2.5,"bullet_speed":480,"damage":1,"color":{"R":108,"G":240,"B":255,"A":255}},
		{"key":"sniper","name":"Sniper","cost":90,"range":320,"fire_rate":0.5,"bullet_speed":900,"damage":4,"color":{"R":255,"G":255,"B":255,"A":255}}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadTowerDefinitions(path)
	if err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	all := lib.All()
	if len(all) != 2 || all[0].Key != "pixel" || all[1].Key != "sniper" {
		t.Fatalf("All = %+v, want pixel then sniper", all)
	}
	if all[0] != PixelTower {
		t.Errorf("pixel = %+v, want %+v", all[0], PixelTower)
	}
}

func TestLoadTowerDefinitionsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTowerDefinitions(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"key":"x","cost":1,"range":10,"fire_rate":0,"bullet_speed":1}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTowerDefinitions(bad); err == nil {
		t.Error("expected validation error for zero fire rate")
	}
}
