package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bdcal/internal/commands"
	"bdcal/internal/exitcode"
)

// Tests for logout command
func TestLogout_NotLoggedIn(t *testing.T) {
	cmd := &commands.LogoutCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected 'not logged in', got %q", stdout)
	}
}

func TestLogout_NotLoggedInQuiet(t *testing.T) {
	cmd := &commands.LogoutCmd{}

	stdout, _, code := runCommand(t, cmd, nil, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestLogout_RemovesToken(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")
	if err := os.WriteFile(tokenPath, []byte(`{"access_token":"x"}`), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runCommandInDir(t, cmd, dir, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
		t.Error("expected token.json to be removed")
	}
}

// Tests for login command
func TestLogin_MissingOAuthClient(t *testing.T) {
	cmd := &commands.LoginCmd{}

	_, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr, "oauth_client.json not found") {
		t.Errorf("expected missing-credentials message, got %q", stderr)
	}
	if !strings.Contains(stderr, "console.cloud.google.com") {
		t.Errorf("expected setup instructions, got %q", stderr)
	}
}
