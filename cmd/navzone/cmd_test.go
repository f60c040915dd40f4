package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"navzone/pkg/navmesh"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&logger.Config{
		AppName:   "navzone_test",
		Level:     logger.ParseLevel("INFO"),
		TrackLine: true,
	})
	os.Exit(m.Run())
}

func writeRectMesh(t *testing.T) (string, string) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "rect.json")
	err := os.WriteFile(filePath, []byte(`{vertices: [0, 0, 0, 2, 0, 0, 2, 0, 1, 0, 0, 1], faces: [3, 0, 2, 1, 0, 3, 0, 3, 2, 0]}`), 0644)
	if err != nil {
		t.Fatalf("write mesh file error: %v", err)
	}
	return dir, filePath
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3("1.5, 0,-2")
	if err != nil || v != (mgl64.Vec3{1.5, 0, -2}) {
		t.Fatalf("unexpected result: %v %v", v, err)
	}
	if _, err = parseVec3("1,2"); err == nil {
		t.Fatalf("two components should fail")
	}
	if _, err = parseVec3("1,a,2"); err == nil {
		t.Fatalf("non number should fail")
	}
}

func TestPathCmd(t *testing.T) {
	dir, filePath := writeRectMesh(t)
	c := PathCmd()
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetArgs([]string{filePath, "--config", filepath.Join(dir, "missing.toml"), "--from", "1.5,0,0.2", "--to", "0.5,0,0.8", "--speed", "1", "--tick", "0.5"})
	if err := c.Execute(); err != nil {
		t.Fatalf("path cmd error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 3 || lines[0] != "0.50,0.00,0.80" || !strings.HasPrefix(lines[1], "trajectory") {
		t.Fatalf("unexpected output: %v", out.String())
	}
	if !strings.HasSuffix(lines[len(lines)-1], "0.50,0.00,0.80") {
		t.Fatalf("trajectory should end at the target: %v", lines[len(lines)-1])
	}

	c = PathCmd()
	c.SetOut(new(bytes.Buffer))
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{filePath, "--config", filepath.Join(dir, "missing.toml"), "--from", "1.5,0,0.2", "--to", "50,0,50"})
	if err := c.Execute(); err == nil {
		t.Fatalf("target outside the mesh should fail")
	}
}

func TestBuildCmd(t *testing.T) {
	dir, filePath := writeRectMesh(t)
	outFile := filepath.Join(dir, "custom.zone")
	c := BuildCmd()
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetArgs([]string{filePath, "--config", filepath.Join(dir, "missing.toml"), "--zone", "custom", "--out", outFile})
	if err := c.Execute(); err != nil {
		t.Fatalf("build cmd error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "zone: custom, vertex: 4, triangle: 2, group: 1") {
		t.Fatalf("unexpected output: %v", out.String())
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read out file error: %v", err)
	}
	zone, err := navmesh.DecodeZone(data)
	if err != nil || zone.TriangleCount() != 2 {
		t.Fatalf("out file should hold the zone, got %v", err)
	}
}
