package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"UEL/internal/args"
	"UEL/internal/config"
	"UEL/internal/crash"
	"UEL/internal/launcher"
	"UEL/internal/logging"
	"UEL/internal/pause"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

func init() {
	logging.Init()
}

// Run resolves the launch configuration, runs the application and returns
// the exit code the launcher process should terminate with. The crash
// reporter is moved under the resolved project root so its reports end up
// next to the application.
func Run(parsedArgs *args.Args, reporter *crash.Reporter) int {
	var cfg config.Config
	if parsedArgs.ConfigFilePath != "" {
		if _, err := os.Stat(parsedArgs.ConfigFilePath); os.IsNotExist(err) {
			logging.ErrorLogger.Fatalf("Config file %s not found", parsedArgs.ConfigFilePath)
		}
		cfg = config.LoadConfigFromFile(parsedArgs.ConfigFilePath)
		logging.InfoLogger.Println("Using provided config file")
	} else {
		cfg = config.LoadEmbeddedConfig()
		logging.InfoLogger.Println("Using embedded config")
	}

	applyOverrides(&cfg, parsedArgs)

	if err := cfg.Resolve(); err != nil {
		logging.ErrorLogger.Fatalf("Failed to resolve project root: %v", err)
	}

	if reporter != nil {
		reporter.Relocate(filepath.Join(cfg.Project.Root, "crash_reports"))
		reporter.SetDetail("project root", cfg.Project.Root)
		reporter.SetDetail("entry point", cfg.Project.Entry)
		reporter.SetDetail("interpreter", cfg.Interpreter.Path)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if parsedArgs.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	l := launcher.New(cfg, logger)

	// Preflight problems are advisory unless fail_fast is set: every step
	// still runs so the operator can read the error output before the
	// window closes.
	problems := l.Preflight()
	for _, problem := range problems {
		logging.WarningLogger.Printf("Preflight: %s", problem)
	}
	if len(problems) > 0 && cfg.Run.FailFast {
		logging.ErrorLogger.Println("Aborting launch (fail_fast is enabled)")
		return 1
	}

	logging.InfoLogger.Printf("Starting %s in %s", cfg.Project.Entry, cfg.Project.Root)
	code := l.Run()

	printCompletionBanner(code)

	if cfg.Run.Pause {
		pause.Wait()
	}

	return code
}

func applyOverrides(cfg *config.Config, parsedArgs *args.Args) {
	if parsedArgs.ProjectRoot != "" {
		cfg.Project.Root = parsedArgs.ProjectRoot
	}
	if parsedArgs.Interpreter != "" {
		cfg.Interpreter.Path = parsedArgs.Interpreter
	}
	if parsedArgs.EntryPoint != "" {
		cfg.Project.Entry = parsedArgs.EntryPoint
	}
	if parsedArgs.NoPause {
		cfg.Run.Pause = false
	}
	if parsedArgs.FailFast {
		cfg.Run.FailFast = true
	}
}

func printCompletionBanner(code int) {
	header := color.New(color.FgHiGreen, color.Bold).SprintfFunc()
	status := color.New(color.FgHiBlue).SprintfFunc()
	if code != 0 {
		status = color.New(color.FgHiRed).SprintfFunc()
	}
	divider := strings.Repeat("=", 50)

	fmt.Println(divider)
	fmt.Println(header("Eye-scan session finished"))
	fmt.Println(status("Exit code: %d", code))
	fmt.Println(divider)
}
