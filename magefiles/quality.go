//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Quality namespace methods
// Note: Quality type is defined in main.go

// Format formats the code with gofumpt
func (Quality) Format() error {
	fmt.Println("Formatting code with gofumpt...")
	return sh.Run("go", "run", "mvdan.cc/gofumpt@latest", "-l", "-w", ".")
}

// Lint runs golangci-lint
func (Quality) Lint() error {
	fmt.Println("Running linter...")
	return sh.Run(
		"go",
		"run",
		"github.com/golangci/golangci-lint/v2/cmd/golangci-lint@latest",
		"run",
		"./...",
	)
}

// Vet runs go vet
func (Quality) Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}

// All runs all quality checks
func (Quality) All() {
	mg.Deps(Quality.Format, Quality.Vet, Quality.Lint, Test.Unit)
}
