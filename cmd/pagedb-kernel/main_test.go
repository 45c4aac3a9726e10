package main

import (
	"os"
	"testing"

	"pagedb/cmd/pagedb-kernel/cli"
)

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty string")
	}
	if BuildTime == "" {
		t.Error("BuildTime should not be empty string")
	}

	cli.SetVersionInfo(Version, BuildTime)
}

func TestMainWithHelp(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"pagedb-kernel", "--help"}

	cli.SetVersionInfo("test-version", "test-build-time")

	if err := cli.Execute(); err != nil {
		t.Errorf("cli.Execute() with --help should not return error, got: %v", err)
	}
}

func TestMainUnknownKernel(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	os.Args = []string{
		"pagedb-kernel",
		"--database", dir + "/db",
		"--out", dir + "/out",
		"--kernel", "not-a-real-kernel",
	}

	cli.SetVersionInfo("test-version", "test-build-time")

	if err := cli.Execute(); err == nil {
		t.Error("cli.Execute() with an unknown kernel should return an error")
	}
}
