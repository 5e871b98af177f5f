package templating

import "testing"

func TestRenderMetadata(t *testing.T) {
	metadata := map[string]string{
		"title":  "Amazing Grace",
		"author": "John Newton",
	}

	got, err := RenderMetadata("{{.title}} ({{.author}})", metadata)
	if err != nil {
		t.Fatalf("RenderMetadata() error = %v", err)
	}
	if got != "Amazing Grace (John Newton)" {
		t.Errorf("RenderMetadata() = %q", got)
	}

	t.Run("missing key renders empty", func(t *testing.T) {
		got, err := RenderMetadata("{{.title}} ({{.nonexisting}})", metadata)
		if err != nil {
			t.Fatalf("RenderMetadata() error = %v", err)
		}
		if got != "Amazing Grace ()" {
			t.Errorf("RenderMetadata() = %q", got)
		}
	})

	t.Run("sprig functions available", func(t *testing.T) {
		got, err := RenderMetadata(`{{.title | upper}}`, metadata)
		if err != nil {
			t.Fatalf("RenderMetadata() error = %v", err)
		}
		if got != "AMAZING GRACE" {
			t.Errorf("RenderMetadata() = %q", got)
		}
	})

	t.Run("parse error surfaces", func(t *testing.T) {
		if _, err := RenderMetadata("{{.title", metadata); err == nil {
			t.Error("expected parse error")
		}
	})
}
