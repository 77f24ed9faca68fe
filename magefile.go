//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binary = "bin/patternbook"

// Build builds the patternbook binary with version metadata.
func Build() error {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/patternbook/internal/version.Version=%s "+
			"-X github.com/dkoosis/patternbook/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/patternbook/internal/version.BuildDate=%s",
		version, commit, date)

	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, "./cmd/patternbook")
}

// Test runs the full test suite with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet across the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint then tests.
func QA() error {
	mg.SerialDeps(Lint, Test)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
