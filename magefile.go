//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

// Build compiles both filter executables into ./bin
func Build() error {
	mg.Deps(BuildFilter, BuildFilterHisto)
	fmt.Println("Compilation finished")
	return nil
}

func BuildFilter() error {
	fmt.Println("Building filterByParticle executable...")
	return goBuild("./bin/filterByParticle", "./filterByParticle")
}

func BuildFilterHisto() error {
	fmt.Println("Building filterByParticleHisto executable...")
	return goBuild("./bin/filterByParticleHisto", "./filterByParticleHisto")
}

// Test runs the unit tests. The HDF5 exporter needs CGO and libhdf5.
func Test() error {
	fmt.Println("Running tests...")
	return goCmd("test", "./...")
}

func goBuild(output string, pkg string) error {
	return goCmd("build", "-o", output, pkg)
}

func goCmd(args ...string) error {
	ldflags := os.Getenv("CGO_LDFLAGS")
	cflags := os.Getenv("CGO_CFLAGS")
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", ldflags),
		fmt.Sprintf("CGO_CFLAGS=%s", cflags))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
