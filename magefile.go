//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the full check
var Default = QA

const ldflagsPkg = "github.com/dkoosis/vsut/internal/version"

// Build builds the vsut binary into bin/
func Build() error {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf("-X %s.CommitHash=%s", ldflagsPkg, commit)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/vsut", "./cmd/vsut")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet and tests, then builds
func QA() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
