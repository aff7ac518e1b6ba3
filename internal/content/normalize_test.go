package content

import (
	"strings"
	"testing"
)

func TestNormalizeStripsMarkup(t *testing.T) {
	got := Normalize("<p>First paragraph.</p> <p>Second <b>bold</b> paragraph.</p>")

	if strings.ContainsAny(got, "<>") {
		t.Fatalf("expected markup to be stripped, got %q", got)
	}

	if !strings.Contains(got, "First paragraph.") {
		t.Fatalf("expected text to survive, got %q", got)
	}

	if !strings.Contains(got, "bold") {
		t.Fatalf("expected inline text to survive, got %q", got)
	}
}

func TestNormalizeDropsScriptAndStyle(t *testing.T) {
	got := Normalize("<p>Keep this.</p> <script>alert(1)</script> <style>p{color:red}</style>")

	if strings.Contains(got, "alert") || strings.Contains(got, "color") {
		t.Fatalf("expected script and style contents to be dropped, got %q", got)
	}

	if !strings.Contains(got, "Keep this.") {
		t.Fatalf("expected text to survive, got %q", got)
	}
}

func TestNormalizeDropsBareURLs(t *testing.T) {
	got := Normalize("Read the report at https://example.com/report?id=1 for details.")

	if strings.Contains(got, "example.com") {
		t.Fatalf("expected URL to be dropped, got %q", got)
	}

	if !strings.Contains(got, "Read the report at") {
		t.Fatalf("expected surrounding text to survive, got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  spaced \n\n out \t text  ")

	if got != "spaced out text" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestNormalizePassesPlainTextThrough(t *testing.T) {
	in := "A plain sentence with no markup."

	if got := Normalize(in); got != in {
		t.Fatalf("expected plain text unchanged, got %q", got)
	}
}
