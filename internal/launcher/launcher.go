package launcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"UEL/internal/config"
	"UEL/internal/logging"

	"github.com/sirupsen/logrus"
)

// ExitSpawnFailure is returned when the child process could never be
// started, so no real child exit code exists.
const ExitSpawnFailure = 127

type Launcher struct {
	Config config.Config
	Logger *logrus.Logger

	// Child process streams, inherited from the launcher console.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New(cfg config.Config, logger *logrus.Logger) *Launcher {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Launcher{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Argv builds the interpreter argument vector. With both interpreter
// switches enabled this is exactly: -X faulthandler -u <entry>.
func (l *Launcher) Argv() []string {
	var argv []string
	if l.Config.Interpreter.FaultHandler {
		argv = append(argv, "-X", "faulthandler")
	}
	if l.Config.Interpreter.Unbuffered {
		argv = append(argv, "-u")
	}
	return append(argv, l.Config.Project.Entry)
}

// Environ overlays the launch variables onto base. Each overlay key
// overwrites any inherited value of the same name; everything else in base
// passes through untouched.
func (l *Launcher) Environ(base []string) []string {
	overlay := []string{
		"PYTHONPATH=" + l.Config.Project.Root,
		"QT_DEBUG_PLUGINS=1",
		"PYTHONUTF8=1",
	}
	for key, value := range l.Config.Env {
		overlay = append(overlay, key+"="+value)
	}

	env := append([]string(nil), base...)
	for _, pair := range overlay {
		env = setEnv(env, pair)
	}
	return env
}

// Preflight checks the launch prerequisites and returns a description of
// every problem found. Problems are advisory: the run sequence continues
// unless fail_fast is set.
func (l *Launcher) Preflight() []string {
	var problems []string

	root := l.Config.Project.Root
	if info, err := os.Stat(root); err != nil {
		problems = append(problems, fmt.Sprintf("project root %s not found", root))
	} else if !info.IsDir() {
		problems = append(problems, fmt.Sprintf("project root %s is not a directory", root))
	} else if _, err := os.Stat(filepath.Join(root, l.Config.Project.Entry)); err != nil {
		problems = append(problems, fmt.Sprintf("entry point %s not found in %s", l.Config.Project.Entry, root))
	}

	interpreter := l.Config.Interpreter.Path
	if strings.ContainsRune(interpreter, os.PathSeparator) {
		if _, err := os.Stat(interpreter); err != nil {
			problems = append(problems, fmt.Sprintf("interpreter %s not found", interpreter))
		}
	} else if _, err := exec.LookPath(interpreter); err != nil {
		problems = append(problems, fmt.Sprintf("interpreter %s not found in PATH", interpreter))
	}

	return problems
}

// Run spawns the interpreter on the entry point and blocks until it exits.
// The child's output streams pass straight through to the console, nothing
// is captured. The return value is the child's exit code, or
// ExitSpawnFailure if the child never started.
func (l *Launcher) Run() int {
	cmd := exec.Command(l.Config.Interpreter.Path, l.Argv()...)
	cmd.Dir = l.Config.Project.Root
	cmd.Env = l.Environ(os.Environ())
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	l.Logger.Debugf("Working directory: %s", cmd.Dir)
	l.Logger.Debugf("Launching: %s %s", cmd.Path, strings.Join(l.Argv(), " "))

	if err := cmd.Start(); err != nil {
		logging.GetErrorLogger().Printf("Failed to start %s: %v", l.Config.Interpreter.Path, err)
		return ExitSpawnFailure
	}

	err := cmd.Wait()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitCode(exitErr)
			l.Logger.Debugf("Application exited with code %d", code)
			return code
		}
		logging.GetErrorLogger().Printf("Failed waiting for %s: %v", l.Config.Interpreter.Path, err)
		return ExitSpawnFailure
	}

	l.Logger.Debug("Application exited cleanly")
	return 0
}

// setEnv replaces pair's key in env, or appends it when the key is absent.
func setEnv(env []string, pair string) []string {
	key := pair[:strings.IndexByte(pair, '=')+1]
	for i, existing := range env {
		if strings.HasPrefix(existing, key) {
			env[i] = pair
			return env
		}
	}
	return append(env, pair)
}
