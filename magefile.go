//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "yt-visualizer"

// Default target - build the binary
var Default = Build

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("-X main.version=%s", version)
}

// Build builds the visualizer with the built-in engine
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, ".")
}

// BuildProjectM builds the visualizer linked against libprojectM
func BuildProjectM() error {
	return sh.RunV("go", "build", "-tags", "projectm", "-ldflags", ldflags(), "-o", binary, ".")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet)
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}
