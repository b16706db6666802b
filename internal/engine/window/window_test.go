package window

import (
	"strings"
	"testing"
)

func TestNewUnknownBackend(t *testing.T) {
	s, err := New(Config{Backend: "vulkan", Title: "test", Width: 800, Height: 600})
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
	if s != nil {
		t.Error("expected nil surface on error")
	}
	if !strings.Contains(err.Error(), "vulkan") {
		t.Errorf("error %q should name the backend", err)
	}
}
