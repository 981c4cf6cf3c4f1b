package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	tmp, err := os.MkdirTemp("", "svglint-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "svglint")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the svglint binary with the given args and optional
// stdin, in dir. It returns stdout, stderr, and the exit code.
func runBinary(t *testing.T, dir, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const passingConfig = "rules:\n  valid: true\n"

func TestCheck_PassingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", passingConfig)
	icon := writeFile(t, dir, "icon.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)

	stdout, stderr, code := runBinary(t, dir, "", "check", "-c", cfg, icon)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected no output for passing file, got %q", stdout)
	}
}

func TestCheck_ErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", "rules:\n  title: true\n")
	icon := writeFile(t, dir, "icon.svg", `<svg><rect/></svg>`)

	stdout, _, code := runBinary(t, dir, "", "check", "-c", cfg, icon)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout, "title") || !strings.Contains(stdout, "[error]") {
		t.Errorf("expected title error in output, got %q", stdout)
	}
}

func TestCheck_WarningStillPasses(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", passingConfig)
	// Missing xmlns is only a warning under the valid rule.
	icon := writeFile(t, dir, "icon.svg", `<svg/>`)

	stdout, _, code := runBinary(t, dir, "", "check", "-c", cfg, icon)
	if code != 0 {
		t.Fatalf("expected exit 0 for warning-only run, got %d", code)
	}
	if !strings.Contains(stdout, "[warning]") {
		t.Errorf("expected warning in output, got %q", stdout)
	}
}

func TestCheck_UnknownRuleRecovered(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", "rules:\n  nope: true\n  valid: true\n")
	icon := writeFile(t, dir, "icon.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)

	_, stderr, code := runBinary(t, dir, "", "check", "-c", cfg, icon)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stderr, `unknown rule "nope"`) {
		t.Errorf("expected unknown-rule warning on stderr, got %q", stderr)
	}
}

func TestCheck_UnparsableSourceSkipped(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", passingConfig)
	bad := writeFile(t, dir, "bad.svg", "<svg><oops>")
	good := writeFile(t, dir, "good.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)

	stdout, _, code := runBinary(t, dir, "", "check", "-c", cfg, bad, good)
	if code != 0 {
		t.Fatalf("skipped source must not fail the run, got exit %d", code)
	}
	if !strings.Contains(stdout, "skipped") {
		t.Errorf("expected skipped notice, got %q", stdout)
	}
}

func TestCheck_MissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	icon := writeFile(t, dir, "icon.svg", `<svg/>`)

	_, _, code := runBinary(t, dir, "", "check", "-c", filepath.Join(dir, "nope.yml"), icon)
	if code != 4 {
		t.Fatalf("expected exit 4 for missing config, got %d", code)
	}
}

func TestCheck_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", "rules:\n  title: true\n")
	icon := writeFile(t, dir, "icon.svg", `<svg/>`)

	stdout, _, code := runBinary(t, dir, "", "check", "-c", cfg, "-f", "json", icon)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}

	var decoded struct {
		Failed   bool `json:"failed"`
		Lintings []struct {
			Status string `json:"status"`
		} `json:"lintings"`
	}
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if !decoded.Failed || len(decoded.Lintings) != 1 || decoded.Lintings[0].Status != "error" {
		t.Errorf("unexpected JSON result: %+v", decoded)
	}
}

func TestCheck_Stdin(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml", "rules:\n  title: true\n")

	stdout, _, code := runBinary(t, dir, `<svg><rect/></svg>`, "check", "-c", cfg)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout, "<stdin>") {
		t.Errorf("expected <stdin> source in output, got %q", stdout)
	}
}

func TestCheck_MultipleConfigsForOneRule(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rc.yml",
		"rules:\n  attr:\n    - selector: //circle\n      r: true\n    - selector: //rect\n      width: true\n")
	icon := writeFile(t, dir, "icon.svg", `<svg><circle/><rect/></svg>`)

	stdout, _, code := runBinary(t, dir, "", "check", "-c", cfg, icon)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout, "attr[0]") || !strings.Contains(stdout, "attr[1]") {
		t.Errorf("expected indexed attribution for both instances, got %q", stdout)
	}
}

func TestInit_CreatesConfig(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := runBinary(t, dir, "", "init")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, ".svglintrc.yml")); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// A second init must refuse to overwrite.
	_, _, code = runBinary(t, dir, "", "init")
	if code != 2 {
		t.Errorf("expected exit 2 for existing config, got %d", code)
	}
}

func TestRules_ListsBuiltins(t *testing.T) {
	stdout, _, code := runBinary(t, t.TempDir(), "", "rules")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, name := range []string{"attr", "elm", "title", "valid"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("expected rule %q in listing, got %q", name, stdout)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, code := runBinary(t, t.TempDir(), "", "bogus")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Errorf("expected unknown command message, got %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, code := runBinary(t, t.TempDir(), "", "version")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(stdout, "svglint ") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}
