package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bdcal/internal/commands"
	"bdcal/internal/config"
	"bdcal/internal/engine"
	"bdcal/internal/exitcode"
	"bdcal/internal/service"
	"bdcal/internal/testutil"
)

// runCommand is a helper to run a command with fake backends.
func runCommand(t *testing.T, cmd commands.Command, clients *service.Clients, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()
	return runCommandFull(t, cmd, clients, t.TempDir(), args, quiet)
}

// runCommandInDir runs a command against an existing config directory.
func runCommandInDir(t *testing.T, cmd commands.Command, dir string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()
	return runCommandFull(t, cmd, nil, dir, nil, quiet)
}

func runCommandFull(t *testing.T, cmd commands.Command, clients *service.Clients, dir string, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   dir,
		Quiet: quiet,
	}
	cfg.Settings.Normalize()

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, clients, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func fakeClients(sheet *testutil.FakeSheet, cal *testutil.FakeCalendar) *service.Clients {
	return &service.Clients{Sheet: sheet, Calendar: cal}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "bdcal 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	if !strings.Contains(stdout, "bdcal sync") {
		t.Error("help output should mention the sync command")
	}
	testutil.GoldenString(t, "help", stdout)
}

// Tests for sync command
func TestSyncCommand_EndToEnd(t *testing.T) {
	sheet := testutil.NewFakeSheet(
		[]string{"", "Ann", "3/5", "9:00", "", "", "", "メール"},
		[]string{"", "", "", "", "", "", "", ""},
	)
	cal := testutil.NewFakeCalendar()

	cmd := &commands.SyncCmd{}
	stdout, _, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if sheet.Written == nil {
		t.Fatal("expected statuses to be written back")
	}
	if sheet.Written[0] != engine.StatusRegistered {
		t.Errorf("expected registered status, got %q", sheet.Written[0])
	}
	if sheet.Written[1] != "" {
		t.Errorf("expected blank row status to stay empty, got %q", sheet.Written[1])
	}
	if got := len(cal.Events()); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
	if !strings.Contains(stdout, "1 registered") {
		t.Errorf("expected summary line, got %q", stdout)
	}
}

func TestSyncCommand_NoRows(t *testing.T) {
	sheet := testutil.NewFakeSheet()
	cal := testutil.NewFakeCalendar()

	cmd := &commands.SyncCmd{}
	stdout, _, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no rows to process\n" {
		t.Errorf("expected no-rows message, got %q", stdout)
	}
	if sheet.Written != nil {
		t.Error("expected no status write for an empty sheet")
	}
}

func TestSyncCommand_SheetError(t *testing.T) {
	sheet := testutil.NewFakeSheet()
	sheet.RowsErr = errors.New("read failed")
	cal := testutil.NewFakeCalendar()

	cmd := &commands.SyncCmd{}
	_, stderr, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "read failed") {
		t.Errorf("expected underlying error in stderr, got %q", stderr)
	}
}

func TestSyncCommand_StatusWriteFailure(t *testing.T) {
	sheet := testutil.NewFakeSheet(
		[]string{"", "Ann", "3/5", "9:00", "", "", "", "メール"},
	)
	sheet.WriteStatusesErr = errors.New("range protected")
	cal := testutil.NewFakeCalendar()

	cmd := &commands.SyncCmd{}
	_, stderr, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "range protected") {
		t.Errorf("expected underlying cause in stderr, got %q", stderr)
	}
	// The calendar mutations stand even though the status write failed.
	if got := len(cal.Events()); got != 2 {
		t.Errorf("expected calendar mutations to remain, got %d events", got)
	}
}

func TestSyncCommand_RejectsArgs(t *testing.T) {
	cmd := &commands.SyncCmd{}
	_, stderr, code := runCommand(t, cmd, fakeClients(testutil.NewFakeSheet(), testutil.NewFakeCalendar()), []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "unexpected argument") {
		t.Errorf("expected argument error, got %q", stderr)
	}
}

// Tests for preview command
func TestPreviewCommand(t *testing.T) {
	sheet := testutil.NewFakeSheet(
		[]string{"", "Ann", "3/5", "9:00", "", "", "", "メール"},
		[]string{"", "", "", "", "", "", "", ""},
		[]string{"", "Bob", "13/40", "", "", "", "", "メール"},
	)
	cal := testutil.NewFakeCalendar()

	cmd := &commands.PreviewCmd{}
	stdout, _, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 preview lines, got %d: %q", len(lines), stdout)
	}
	if lines[0] != "   2  Ann  3/5  email  当日 0m" {
		t.Errorf("unexpected line for Ann: %q", lines[0])
	}
	if lines[1] != "   3  (blank)" {
		t.Errorf("unexpected line for blank row: %q", lines[1])
	}
	if !strings.Contains(lines[2], `unparseable birthday "13/40"`) {
		t.Errorf("unexpected line for Bob: %q", lines[2])
	}
	if got := len(cal.Events()); got != 0 {
		t.Errorf("preview must not touch the calendar, got %d events", got)
	}
	if sheet.Written != nil {
		t.Error("preview must not write statuses")
	}
}

// Tests for calendars command
func TestCalendarsCommand(t *testing.T) {
	sheet := testutil.NewFakeSheet()
	cal := testutil.NewFakeCalendar()
	cal.AddCalendar("family@group.calendar.google.com", "Family")

	cmd := &commands.CalendarsCmd{}
	stdout, _, code := runCommand(t, cmd, fakeClients(sheet, cal), nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "My Calendar [primary]  primary\nFamily  family@group.calendar.google.com\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestCalendarsCommand_BackendError(t *testing.T) {
	cal := testutil.NewFakeCalendar()
	cal.ListCalendarsErr = errors.New("api down")

	cmd := &commands.CalendarsCmd{}
	_, stderr, code := runCommand(t, cmd, fakeClients(testutil.NewFakeSheet(), cal), nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "api down") {
		t.Errorf("expected underlying error, got %q", stderr)
	}
}
