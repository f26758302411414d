package assets

import (
	"strings"
	"testing"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"quad.vert", "quad.frag"} {
		t.Run(name, func(t *testing.T) {
			src, err := LoadShader(name)
			if err != nil {
				t.Fatalf("LoadShader(%q) error = %v", name, err)
			}
			if !strings.HasPrefix(src, "#version 330 core") {
				t.Errorf("source does not start with a version directive")
			}
			if !strings.HasSuffix(src, "\x00") {
				t.Errorf("source is not null-terminated")
			}
		})
	}
}

func TestLoadShader_Missing(t *testing.T) {
	if _, err := LoadShader("missing.vert"); err == nil {
		t.Fatal("LoadShader() error = nil, want error")
	}
}
