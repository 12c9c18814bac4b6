//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test namespace methods
// Note: Test type is defined in main.go

// Unit runs unit tests
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "./pkg/...", "./internal/...", "./cmd/...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	return sh.RunV(
		"go",
		"test",
		"-coverprofile=coverage.out",
		"./pkg/...",
		"./internal/...",
		"./cmd/...",
	)
}

// CoverageHTML generates HTML coverage report
func (Test) CoverageHTML() error {
	mg.Deps(Test.Coverage)
	fmt.Println("Generating HTML coverage report...")
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}
