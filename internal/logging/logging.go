// internal/logging/logging.go
package logging

import (
	"log"
	"os"
	"sync"
)

var (
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
	SuccessLogger *log.Logger
	once          sync.Once
)

const (
	InfoColor    = "\033[34m" // blue
	WarningColor = "\033[33m" // yellow
	ErrorColor   = "\033[31m" // red
	ResetColor   = "\033[0m"  // reset
	SuccessColor = "\033[32m" // green
)

func Init() {
	once.Do(func() {
		InfoLogger = log.New(os.Stdout, InfoColor+"[-] "+ResetColor, log.Ldate|log.Ltime)
		WarningLogger = log.New(os.Stdout, WarningColor+"[!] "+ResetColor, log.Ldate|log.Ltime)
		ErrorLogger = log.New(os.Stderr, ErrorColor+"[x] "+ResetColor, log.Ldate|log.Ltime)
		SuccessLogger = log.New(os.Stdout, SuccessColor+"[+] "+ResetColor, log.Ldate|log.Ltime)
	})
}

// GetInfoLogger returns the InfoLogger, initializing it if necessary
func GetInfoLogger() *log.Logger {
	if InfoLogger == nil {
		Init()
	}
	return InfoLogger
}

// GetWarningLogger returns the WarningLogger, initializing it if necessary
func GetWarningLogger() *log.Logger {
	if WarningLogger == nil {
		Init()
	}
	return WarningLogger
}

// GetErrorLogger returns the ErrorLogger, initializing it if necessary
func GetErrorLogger() *log.Logger {
	if ErrorLogger == nil {
		Init()
	}
	return ErrorLogger
}

// GetSuccessLogger returns the SuccessLogger, initializing it if necessary
func GetSuccessLogger() *log.Logger {
	if SuccessLogger == nil {
		Init()
	}
	return SuccessLogger
}
