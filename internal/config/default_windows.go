//go:build windows

package config

const defaultInterpreter = "python.exe"
