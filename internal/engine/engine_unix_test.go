//go:build !windows

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"UEL/internal/args"
	"UEL/internal/crash"
)

// The fake interpreter records its argument vector and the launch overlay,
// then exits with the code given in UEL_TEST_EXIT.
const fakeInterpreter = `#!/bin/sh
if [ -n "$UEL_TEST_OUT" ]; then
	echo "$@" > "$UEL_TEST_OUT"
	echo "$PYTHONPATH" >> "$UEL_TEST_OUT"
	echo "$QT_DEBUG_PLUGINS" >> "$UEL_TEST_OUT"
	echo "$PYTHONUTF8" >> "$UEL_TEST_OUT"
fi
exit "${UEL_TEST_EXIT:-0}"
`

// writeRunSetup builds a project root with a fake interpreter and a config
// file that sets only the paths, the test hooks and the pause gate. The
// interpreter switches are deliberately left to the defaults.
func writeRunSetup(t *testing.T, exitCode int) (configPath, outPath string) {
	t.Helper()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("print('ok')\n"), 0644); err != nil {
		t.Fatal(err)
	}

	interpreter := filepath.Join(root, "fakepython")
	if err := os.WriteFile(interpreter, []byte(fakeInterpreter), 0755); err != nil {
		t.Fatal(err)
	}

	outPath = filepath.Join(root, "run.out")
	content := fmt.Sprintf(`
[project]
root = %q

[interpreter]
path = %q

[env]
UEL_TEST_OUT = %q
UEL_TEST_EXIT = "%d"

[run]
pause = false
`, root, interpreter, outPath, exitCode)

	configPath = filepath.Join(root, "launcher.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath, outPath
}

func testReporter(t *testing.T) *crash.Reporter {
	t.Helper()
	return crash.NewReporter(t.TempDir())
}

func TestRunCleanExit(t *testing.T) {
	configPath, _ := writeRunSetup(t, 0)

	if code := Run(&args.Args{ConfigFilePath: configPath}, testReporter(t)); code != 0 {
		t.Errorf("Run returned %d, not 0", code)
	}
}

func TestRunPropagatesChildExitCode(t *testing.T) {
	configPath, _ := writeRunSetup(t, 5)

	if code := Run(&args.Args{ConfigFilePath: configPath}, testReporter(t)); code != 5 {
		t.Errorf("Run returned %d, not 5", code)
	}
}

func TestRunDefaultSwitchesWithFileConfig(t *testing.T) {
	configPath, outPath := writeRunSetup(t, 7)

	if code := Run(&args.Args{ConfigFilePath: configPath}, testReporter(t)); code != 7 {
		t.Errorf("Run returned %d, not 7", code)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// A config file that never mentions the interpreter switches must still
	// launch with the full default argument vector and overlay.
	if lines[0] != "-X faulthandler -u main.py" {
		t.Errorf("Argument vector is %q, not %q", lines[0], "-X faulthandler -u main.py")
	}
	if len(lines) != 4 || lines[2] != "1" || lines[3] != "1" {
		t.Errorf("Launch overlay was not applied: %q", lines)
	}
}

func TestRunRelocatesCrashReporter(t *testing.T) {
	configPath, _ := writeRunSetup(t, 0)

	reporter := crash.NewReporter(t.TempDir())
	if code := Run(&args.Args{ConfigFilePath: configPath}, reporter); code != 0 {
		t.Fatalf("Run returned %d, not 0", code)
	}

	reportPath := reporter.Capture("run", "boom")
	if reportPath == "" {
		t.Fatal("Capture returned no report path")
	}
	if filepath.Dir(filepath.Dir(reportPath)) != filepath.Dir(configPath) {
		t.Errorf("Report %q is not under the project root", reportPath)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "project root: ") {
		t.Error("Report is missing the resolved project root")
	}
}

func TestRunFailOpenStillCompletes(t *testing.T) {
	configPath, _ := writeRunSetup(t, 0)

	// A bad root is only a warning by default: the run still goes through
	// the spawn attempt and finishes with a spawn failure code.
	parsed := &args.Args{
		ConfigFilePath: configPath,
		ProjectRoot:    filepath.Join(t.TempDir(), "no-such-dir"),
	}
	if code := Run(parsed, testReporter(t)); code == 0 {
		t.Error("Run returned 0 for a missing project root")
	}
}

func TestRunFailFastAborts(t *testing.T) {
	configPath, _ := writeRunSetup(t, 0)

	parsed := &args.Args{
		ConfigFilePath: configPath,
		ProjectRoot:    filepath.Join(t.TempDir(), "no-such-dir"),
		FailFast:       true,
	}
	if code := Run(parsed, testReporter(t)); code != 1 {
		t.Errorf("Run returned %d, not 1", code)
	}
}
