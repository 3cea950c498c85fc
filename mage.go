//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput        = "gen"
	sqliteFile       = "scheduler.sqlite"
	serverBin        = "./bin/scheduler"
	certgenBin       = "./bin/certgen"
	serverConfigPath = "configs/server.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the scheduler and certgen binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "build", "-o", serverBin, "./cmd"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen")
}

// Run starts the server with the default config
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "--config", serverConfigPath, "serve")
}

// Migrate applies migrations to the local database
func Migrate() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "--config", serverConfigPath, "migrate")
}

// GenJet regenerates query builders from the migrated local database
func GenJet() error {
	mg.Deps(buildJetTool, Migrate)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFile, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

// Cert writes a self-signed certificate for serving TLS
func Cert() error {
	mg.Deps(Build)
	return sh.Run(certgenBin, "-config", serverConfigPath)
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs unit and http tests
func Test() error {
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "test", "-race", "./...")
}
