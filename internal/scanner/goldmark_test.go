package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-readtime/pkg/interfaces"
)

func scanAll(tb testing.TB, source string) []interfaces.Unit {
	tb.Helper()

	var units []interfaces.Unit
	err := NewGoldmark().Scan([]byte(source), func(unit interfaces.Unit) error {
		units = append(units, unit)
		return nil
	})
	if err != nil {
		tb.Fatalf("Scan: %v", err)
	}
	return units
}

func countKind(units []interfaces.Unit, kind interfaces.UnitKind) int {
	total := 0
	for _, unit := range units {
		if unit.Kind == kind {
			total++
		}
	}
	return total
}

func proseText(units []interfaces.Unit) string {
	var b strings.Builder
	for _, unit := range units {
		if unit.Kind == interfaces.UnitProse {
			b.WriteString(unit.Text)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func TestScanClassifiesBasicDocument(t *testing.T) {
	units := scanAll(t, "# Title\n\nHello world.\n\n![alt](img.png)\n\n```\ncode\n```")

	if got := countKind(units, interfaces.UnitImage); got != 1 {
		t.Fatalf("image units = %d, want 1", got)
	}
	if got := countKind(units, interfaces.UnitCodeBlock); got != 1 {
		t.Fatalf("code block units = %d, want 1", got)
	}

	prose := proseText(units)
	if !strings.Contains(prose, "Title") || !strings.Contains(prose, "Hello world.") {
		t.Fatalf("prose missing heading or paragraph text: %q", prose)
	}
	if strings.Contains(prose, "#") {
		t.Fatalf("prose retained heading marker: %q", prose)
	}
	if strings.Contains(prose, "alt") {
		t.Fatalf("image alt text leaked into prose: %q", prose)
	}
	if strings.Contains(prose, "code") {
		t.Fatalf("code block content leaked into prose: %q", prose)
	}
}

func TestScanEmptyInput(t *testing.T) {
	if units := scanAll(t, ""); len(units) != 0 {
		t.Fatalf("expected no units for empty input, got %d", len(units))
	}
}

func TestScanInlineCodeIsProse(t *testing.T) {
	units := scanAll(t, "run `go build` before pushing")

	if got := countKind(units, interfaces.UnitCodeBlock); got != 0 {
		t.Fatalf("inline code classified as code block: %d units", got)
	}
	if prose := proseText(units); !strings.Contains(prose, "go build") {
		t.Fatalf("inline code text missing from prose: %q", prose)
	}
}

func TestScanIndentedCodeBlock(t *testing.T) {
	units := scanAll(t, "intro paragraph\n\n    indented code line\n")

	if got := countKind(units, interfaces.UnitCodeBlock); got != 1 {
		t.Fatalf("indented code blocks = %d, want 1", got)
	}
	if prose := proseText(units); strings.Contains(prose, "indented code") {
		t.Fatalf("indented code leaked into prose: %q", prose)
	}
}

func TestScanUnterminatedFence(t *testing.T) {
	units := scanAll(t, "before the fence\n\n```\nnever closed")

	if got := countKind(units, interfaces.UnitCodeBlock); got != 1 {
		t.Fatalf("unterminated fence blocks = %d, want 1", got)
	}

	prose := proseText(units)
	if !strings.Contains(prose, "before the fence") {
		t.Fatalf("prose before the fence missing: %q", prose)
	}
	if strings.Contains(prose, "never closed") {
		t.Fatalf("open fence content leaked into prose: %q", prose)
	}
}

func TestScanLinkTextCountsURLDoesNot(t *testing.T) {
	units := scanAll(t, "[click here](https://example.com/page) for details")

	prose := proseText(units)
	if !strings.Contains(prose, "click here") {
		t.Fatalf("link text missing from prose: %q", prose)
	}
	if strings.Contains(prose, "example.com") {
		t.Fatalf("link destination leaked into prose: %q", prose)
	}
}

func TestScanAutolinkURLSkipped(t *testing.T) {
	units := scanAll(t, "visit https://example.com today")

	prose := proseText(units)
	if strings.Contains(prose, "example.com") {
		t.Fatalf("autolink URL leaked into prose: %q", prose)
	}
	if !strings.Contains(prose, "visit") || !strings.Contains(prose, "today") {
		t.Fatalf("surrounding prose missing: %q", prose)
	}
}

func TestScanReferenceStyleImage(t *testing.T) {
	units := scanAll(t, "![logo][ref]\n\n[ref]: /assets/logo.png")

	if got := countKind(units, interfaces.UnitImage); got != 1 {
		t.Fatalf("reference image units = %d, want 1", got)
	}
}

func TestScanTableCellsAreProse(t *testing.T) {
	units := scanAll(t, "| name | value |\n|------|-------|\n| alpha | beta |\n")

	prose := proseText(units)
	for _, cell := range []string{"name", "value", "alpha", "beta"} {
		if !strings.Contains(prose, cell) {
			t.Fatalf("table cell %q missing from prose: %q", cell, prose)
		}
	}
}

func TestScanMultipleImagesAndBlocks(t *testing.T) {
	source := strings.Join([]string{
		"intro",
		"![a](1.png)",
		"![b](2.png)",
		"![c](3.png)",
		"```\nfirst\n```",
		"```\nsecond\n```",
	}, "\n\n")

	units := scanAll(t, source)
	if got := countKind(units, interfaces.UnitImage); got != 3 {
		t.Fatalf("image units = %d, want 3", got)
	}
	if got := countKind(units, interfaces.UnitCodeBlock); got != 2 {
		t.Fatalf("code block units = %d, want 2", got)
	}
}

func TestScanPropagatesEmitError(t *testing.T) {
	sentinel := errors.New("stop here")

	err := NewGoldmark().Scan([]byte("some prose"), func(interfaces.Unit) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected emit error to propagate, got %v", err)
	}
}
