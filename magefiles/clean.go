//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/sh"
)

// Clean namespace methods
// Note: Clean type is defined in main.go

// All removes all build artifacts
func (Clean) All() error {
	fmt.Println("Cleaning all build artifacts...")
	if err := os.RemoveAll("dist"); err != nil {
		return err
	}
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return (Clean{}).Coverage()
}

// Coverage removes coverage files
func (Clean) Coverage() error {
	fmt.Println("Cleaning coverage files...")
	os.Remove("coverage.out")
	os.Remove("coverage.html")
	return nil
}

// Cache removes the forgehub clone cache
func (Clean) Cache() error {
	fmt.Println("Cleaning forgehub cache...")
	if _, err := os.Stat("dist/forgehub"); err != nil {
		fmt.Println("Binary not found, skipping cache clean")
		return nil
	}
	return sh.RunV("./dist/forgehub", "clean")
}
