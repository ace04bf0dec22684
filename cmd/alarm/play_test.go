package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMotion(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "shakes.csv")
	if err := os.WriteFile(good, []byte("offset_ms,x,y,z\n0,0,0,9.8\n120,14,3,9.8\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("offset_ms,x,y,z\nsoon,0,0,9.8\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		points  int
		wantErr bool
	}{
		{"valid track", good, 2, false},
		{"missing file", filepath.Join(dir, "nope.csv"), 0, true},
		{"malformed offset", bad, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := readMotion(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readMotion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(track) != tt.points {
				t.Errorf("readMotion() returned %d points, expected %d", len(track), tt.points)
			}
		})
	}
}
