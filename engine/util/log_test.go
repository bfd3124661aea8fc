package util

import "testing"

func TestLogFiltersByLevelAndCategory(t *testing.T) {
	var lines []string
	SetLogSink(func(s string) { lines = append(lines, s) })
	defer SetLogSink(nil)
	defer SetLogLevel(LogLevelInfo)
	defer SetLogCategories(LogAll)

	SetLogLevel(LogLevelInfo)
	SetLogCategories(LogVoxel | LogIO)

	LogVoxelInfo("a")
	LogVoxelDebug("b")
	LogMeshInfo("c")
	LogIOError("d")

	if len(lines) != 2 || lines[0] != "a" || lines[1] != "d" {
		t.Fatalf("got %v", lines)
	}
}

func TestParseLogSettings(t *testing.T) {
	lvl, err := ParseLogLevel("Debug")
	if err != nil || lvl != LogLevelDebug {
		t.Fatalf("got %v %v", lvl, err)
	}
	if _, err := ParseLogLevel("loud"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
	cats, err := ParseLogCategories([]string{"voxel", "gl"})
	if err != nil || cats != LogVoxel|LogOpenGL {
		t.Fatalf("got %v %v", cats, err)
	}
	cats, err = ParseLogCategories(nil)
	if err != nil || cats != LogAll {
		t.Fatalf("got %v %v", cats, err)
	}
}
