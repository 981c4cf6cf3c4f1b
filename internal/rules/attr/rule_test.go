package attr

import (
	"strings"
	"testing"

	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/svg"
)

func runRule(t *testing.T, settings map[string]any, source string) []lint.Diagnostic {
	t.Helper()
	inst, err := (&Rule{}).Instantiate(settings)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	doc, err := svg.Parse("test.svg", []byte(source))
	if err != nil {
		t.Fatal(err)
	}
	rep := lint.NewReporter("attr")
	inst(rep, doc)
	return rep.Diagnostics()
}

func TestRequiredAttribute(t *testing.T) {
	diags := runRule(t, map[string]any{"role": true}, `<svg viewBox="0 0 24 24"/>`)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != lint.Error || !strings.Contains(diags[0].Message, `"role"`) {
		t.Errorf("unexpected diagnostic: %+v", diags[0])
	}

	diags = runRule(t, map[string]any{"role": true}, `<svg role="img"/>`)
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestBannedAttribute(t *testing.T) {
	diags := runRule(t, map[string]any{"stroke": false}, `<svg stroke="red"/>`)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}

	diags = runRule(t, map[string]any{"stroke": false}, `<svg/>`)
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %+v", diags)
	}
}

func TestPermittedValues(t *testing.T) {
	settings := map[string]any{"role": []any{"img", "presentation"}}

	if diags := runRule(t, settings, `<svg role="img"/>`); len(diags) != 0 {
		t.Errorf("allowed value reported: %+v", diags)
	}
	diags := runRule(t, settings, `<svg role="button"/>`)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if !strings.Contains(diags[0].Message, `"button"`) {
		t.Errorf("unexpected message: %q", diags[0].Message)
	}
}

func TestExactStringValue(t *testing.T) {
	settings := map[string]any{"width": "24"}
	if diags := runRule(t, settings, `<svg width="24"/>`); len(diags) != 0 {
		t.Errorf("exact value reported: %+v", diags)
	}
	if diags := runRule(t, settings, `<svg width="16"/>`); len(diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %+v", diags)
	}
}

func TestSelector(t *testing.T) {
	settings := map[string]any{"selector": "//circle", "r": true}
	source := `<svg><circle cx="1"/><circle r="4"/></svg>`
	diags := runRule(t, settings, source)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for the circle without r, got %d", len(diags))
	}
}

func TestWhitelist(t *testing.T) {
	settings := map[string]any{"whitelist": true, "viewBox": true}
	diags := runRule(t, settings, `<svg viewBox="0 0 24 24" onload="alert(1)"/>`)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %+v", diags)
	}
	if !strings.Contains(diags[0].Message, `"onload"`) {
		t.Errorf("unexpected message: %q", diags[0].Message)
	}
}

func TestWhitelistIgnoresXmlns(t *testing.T) {
	settings := map[string]any{"whitelist": true}
	diags := runRule(t, settings, `<svg xmlns="http://www.w3.org/2000/svg"/>`)
	if len(diags) != 0 {
		t.Errorf("xmlns reported under whitelist: %+v", diags)
	}
}

func TestInvalidSettings(t *testing.T) {
	if _, err := (&Rule{}).Instantiate(map[string]any{"selector": 7}); err == nil {
		t.Error("expected error for non-string selector")
	}
	if _, err := (&Rule{}).Instantiate(map[string]any{"role": map[string]any{}}); err == nil {
		t.Error("expected error for mapping expectation")
	}
}
