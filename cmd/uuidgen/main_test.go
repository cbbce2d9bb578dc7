package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

var v4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGenerateCommand(t *testing.T) {
	code, out, errOut := runCLI(t, "generate", "-n", "3")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	for _, line := range lines {
		if !v4Pattern.MatchString(line) {
			t.Fatalf("unexpected uuid %q", line)
		}
	}
}

func TestGenerateCommandRejectsLargeBatch(t *testing.T) {
	code, _, errOut := runCLI(t, "--max-count", "5", "generate", "-n", "6")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut, "INVALID_PARAMETER") {
		t.Fatalf("expected code name on stderr, got %q", errOut)
	}
}

func TestInspectCommandText(t *testing.T) {
	code, out, errOut := runCLI(t, "inspect", "12345678-9abc-4def-8123-456789abcdef")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}

	for _, want := range []string{
		"12345678-9abc-4def-8123-456789abcdef",
		"RFC 4122",
		"yes",
		"456789abcdef",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes with --no-color:\n%q", out)
	}
}

func TestInspectCommandJSON(t *testing.T) {
	code, out, errOut := runCLI(t, "inspect", "--format", "json", "00000000-0000-4000-8000-000000000000")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}

	var view inspectView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if view.Version != 4 || view.Variant != 2 || !view.IsV4 {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.Layout.TimeHiAndVersion != 0x4000 {
		t.Fatalf("unexpected layout %+v", view.Layout)
	}
}

func TestInspectCommandYAML(t *testing.T) {
	code, out, errOut := runCLI(t, "inspect", "-f", "yaml", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}

	var view inspectView
	if err := yaml.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if view.UUID != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" || view.Version != 1 || view.IsV4 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestInspectCommandRejectsNonCanonical(t *testing.T) {
	code, out, _ := runCLI(t, "inspect", "{00000000-0000-4000-8000-000000000000}")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestInspectCommandUnknownFormat(t *testing.T) {
	code, _, _ := runCLI(t, "inspect", "--format", "xml", "00000000-0000-4000-8000-000000000000")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestCompareCommand(t *testing.T) {
	a := "12345678-9abc-4def-8123-456789abcdef"

	code, out, _ := runCLI(t, "compare", a, a)
	if code != 0 || strings.TrimSpace(out) != "equal" {
		t.Fatalf("expected equal, got %d %q", code, out)
	}

	code, out, _ = runCLI(t, "compare", a, "00000000-0000-4000-8000-000000000000")
	if code != 0 || strings.TrimSpace(out) != "different" {
		t.Fatalf("expected different, got %d %q", code, out)
	}

	code, _, errOut := runCLI(t, "compare", a, "nope")
	if code != 2 || !strings.Contains(errOut, "second uuid") {
		t.Fatalf("expected exit 2 naming the second argument, got %d %q", code, errOut)
	}
}

func TestCompareCommandMissingArgument(t *testing.T) {
	if code, _, _ := runCLI(t, "compare", "12345678-9abc-4def-8123-456789abcdef"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestSelfTestCommand(t *testing.T) {
	code, out, errOut := runCLI(t, "selftest", "-n", "500", "-w", "4")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "PASS generated=500/500 duplicates=0 malformed=0 workers=4") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSelfTestCommandInvalidWorkers(t *testing.T) {
	if code, _, _ := runCLI(t, "selftest", "-n", "10", "-w", "-1"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("expected exit 2 without a command, got %d", code)
	}
	if code, _, _ := runCLI(t, "frobnicate"); code != 2 {
		t.Fatalf("expected exit 2 for unknown command, got %d", code)
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "selftest") {
		t.Fatalf("expected commands in help output, got %q", out)
	}
}

func TestOptionDefaultsMatchServer(t *testing.T) {
	for _, key := range []string{
		"UUIDGEN_MODULES_UUIDGEN_MAX_COUNT",
		"UUIDGEN_MODULES_UUIDGEN_ENTROPY_RETRIES",
		"UUIDGEN_MODULES_UUIDGEN_ENTROPY_BACKOFF",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag)
	parser.CommandHandler = func(flags.Commander, []string) error { return nil }
	if _, err := parser.ParseArgs([]string{"generate"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if opts.MaxCount != usecase.DefaultMaxCount {
		t.Fatalf("expected max count %d, got %d", usecase.DefaultMaxCount, opts.MaxCount)
	}
	if opts.EntropyRetries != usecase.DefaultMaxRetries {
		t.Fatalf("expected entropy retries %d, got %d", usecase.DefaultMaxRetries, opts.EntropyRetries)
	}
	if opts.EntropyBackoff != usecase.DefaultBaseBackoff {
		t.Fatalf("expected entropy backoff %v, got %v", usecase.DefaultBaseBackoff, opts.EntropyBackoff)
	}
}
