package main

import (
	"os"

	"UEL/internal/args"
	"UEL/internal/crash"
	"UEL/internal/engine"
	"UEL/internal/logging"
)

func init() {
	logging.Init()
}

func main() {
	os.Exit(run())
}

func run() (code int) {
	reporter := crash.NewReporter("")
	defer func() {
		if recovered := recover(); recovered != nil {
			reporter.Capture("launcher", recovered)
			code = 2
		}
	}()

	return engine.Run(args.ParseArgs(), reporter)
}
