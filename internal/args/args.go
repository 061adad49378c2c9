package args

import (
	"flag"
	"fmt"
	"os"
)

type Args struct {
	ConfigFilePath string
	ProjectRoot    string
	Interpreter    string
	EntryPoint     string
	NoPause        bool
	FailFast       bool
	Debug          bool
}

func ParseArgs() *Args {
	return parseArgs(flag.CommandLine, os.Args[1:])
}

func parseArgs(fs *flag.FlagSet, argv []string) *Args {
	configFilePath := fs.String("config", "", "Path to the launcher configuration file (optional)")
	fs.StringVar(configFilePath, "c", *configFilePath, "Path to the launcher configuration file (optional) (short)")

	projectRoot := fs.String("root", "", "Path to the application project root (overrides config)")
	fs.StringVar(projectRoot, "r", *projectRoot, "Path to the application project root (short)")

	interpreter := fs.String("python", "", "Path to the Python interpreter (overrides config)")

	entryPoint := fs.String("entry", "", "Entry-point script relative to the project root (overrides config)")

	noPause := fs.Bool("no-pause", false, "Do not wait for a key press after the application exits")

	failFast := fs.Bool("fail-fast", false, "Abort before launch if the environment checks fail")

	debug := fs.Bool("debug", false, "Enable verbose launcher diagnostics")

	fs.Usage = func() {
		fmt.Printf("Usage: %s [options]\n", fs.Name())
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	fs.Parse(argv)

	return &Args{
		ConfigFilePath: *configFilePath,
		ProjectRoot:    *projectRoot,
		Interpreter:    *interpreter,
		EntryPoint:     *entryPoint,
		NoPause:        *noPause,
		FailFast:       *failFast,
		Debug:          *debug,
	}
}
