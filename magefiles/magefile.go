//go:build mage

// Package main provides build targets for gpures using Mage.
//
// Usage:
//
//	mage build      Compile gpuresctl to bin/
//	mage test       Run all tests
//	mage race       Run all tests with the race detector
//	mage vet        Run go vet
//	mage lint       Run golangci-lint
//	mage stress     Build and run a recorded stress pass on the headless backend
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "gpuresctl"
	binaryDir  = "bin"
	cmdDir     = "./cmd/gpuresctl"
)

// Build compiles the gpuresctl binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Stress builds gpuresctl and runs a recorded stress pass.
func Stress() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	return sh.RunWithV(map[string]string{"GPURES_LOG_LEVEL": "info"},
		bin, "stress", "--backend", "headless", "--workers", "16", "--record")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
