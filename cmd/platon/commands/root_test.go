// ABOUTME: Tests for the root command wiring
// ABOUTME: Verifies subcommand registration and global flags

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := []string{"serve", "chat", "ask", "remember", "ingest", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Subcommand %q not registered", name)
		}
	}
}

func TestNewRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("Missing persistent flag --verbose")
	}
	if cmd.PersistentFlags().Lookup("quiet") == nil {
		t.Error("Missing persistent flag --quiet")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	var out bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	for _, want := range []string{"1.2.3", "abc1234", "2026-01-01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Version output %q missing %q", out.String(), want)
		}
	}
}
