package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultContentFeatureCards(t *testing.T) {
	content := DefaultContent()

	if len(content.Features) != FeatureCount {
		t.Fatalf("Expected %d features, got %d", FeatureCount, len(content.Features))
	}

	for i, f := range content.Features {
		if strings.TrimSpace(f.Title) == "" {
			t.Errorf("feature %d has empty title", i)
		}
		if strings.TrimSpace(f.Caption) == "" {
			t.Errorf("feature %d has empty caption", i)
		}
		if f.Glyph == "" {
			t.Errorf("feature %d has no glyph", i)
		}
	}
}

func TestDefaultContentTags(t *testing.T) {
	want := []string{"/start", "/firebase-setup", "/design-check", "/deploy", "/fix"}

	if diff := cmp.Diff(want, DefaultContent().Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultContentCommandToken(t *testing.T) {
	in := DefaultContent().Instructions

	if in.Command != "/start" {
		t.Errorf("Expected command '/start', got '%s'", in.Command)
	}

	lines := in.Lines()
	if len(lines) != 3 {
		t.Fatalf("Expected 3 preformatted lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.HasPrefix(lines[2], "#") {
		t.Errorf("Expected comment lines around the command, got %q", lines)
	}
	if lines[1] != in.Command {
		t.Errorf("Expected middle line to be the command, got '%s'", lines[1])
	}
}

func TestDefaultContentIsACopy(t *testing.T) {
	first := DefaultContent()
	first.Tags[0] = "/mutated"
	first.Features[0].Title = "mutated"

	second := DefaultContent()
	if second.Tags[0] != "/start" {
		t.Errorf("tag literal was mutated through a previous copy: %s", second.Tags[0])
	}
	if second.Features[0].Title == "mutated" {
		t.Error("feature literal was mutated through a previous copy")
	}
}

func TestDefaultContentDeterministic(t *testing.T) {
	if diff := cmp.Diff(DefaultContent(), DefaultContent()); diff != "" {
		t.Errorf("content differs between calls (-first +second):\n%s", diff)
	}
}
