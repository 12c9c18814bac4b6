//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build namespace methods
// Note: Build type is defined in main.go

// Binary builds the forgehub binary into dist/
func (Build) Binary() error {
	fmt.Println("Building forgehub...")
	return sh.Run("go", "build", "-o", "dist/forgehub", "./cmd/forgehub")
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing forgehub...")
	return sh.Run("go", "install", "./cmd/forgehub")
}

// Debug builds with debug flags
func (Build) Debug() error {
	fmt.Println("Building forgehub with debug flags...")
	return sh.Run(
		"go",
		"build",
		"-gcflags",
		"all=-N -l",
		"-o",
		"dist/forgehub-debug",
		"./cmd/forgehub",
	)
}
