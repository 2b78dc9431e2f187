package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// run executes the root command against home and returns stdout.
func run(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := runErr(t, home, args...)
	if err != nil {
		t.Fatalf("rooster %v: %v", args, err)
	}
	return out
}

func runErr(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

var (
	projectIDPattern = regexp.MustCompile(`\((proj-[0-9a-f]{8})\)`)
	taskIDPattern    = regexp.MustCompile(`\((task-[0-9a-f]{8})\)`)
)

func createProject(t *testing.T, home string) string {
	t.Helper()
	out := run(t, home, "project", "create", "--name", "Site", "--description", "marketing site")
	m := projectIDPattern.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("project id not found in %q", out)
	}
	return m[1]
}

func TestNewRootCmd_hasSubcommands(t *testing.T) {
	root := NewRootCmd("test")
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "doctor", "project", "task", "agent", "route", "board", "nuke"} {
		if !names[want] {
			t.Errorf("expected subcommand %q", want)
		}
	}
}

func TestNewRootCmd_versionFlag(t *testing.T) {
	root := NewRootCmd("1.2.3")
	if root.Version != "1.2.3" {
		t.Errorf("Version: got %q", root.Version)
	}
	if NewRootCmd("").Version != "dev" {
		t.Error("empty version should default to dev")
	}
}

func TestNewRootCmd_persistentFlags(t *testing.T) {
	root := NewRootCmd("")
	for _, name := range []string{"home", "config", "log-level", "log-format", "metrics-textfile"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag", name)
		}
	}
}

func TestInit_seedsAgents(t *testing.T) {
	home := t.TempDir()
	out := run(t, home, "init")
	if !strings.Contains(out, "✓ Initialized 7 AI agents") {
		t.Fatalf("init output: %q", out)
	}
	out = run(t, home, "agent", "list")
	if strings.Contains(out, "Initializing default agents") {
		t.Fatal("agent list should not reseed after init")
	}
	if !strings.Contains(out, "● Taylor Johnson - QA (agent-qa-001)") {
		t.Fatalf("agent list: %q", out)
	}
}

func TestAgentList_seedsEmptyRoster(t *testing.T) {
	home := t.TempDir()
	out := run(t, home, "agent", "list")
	if !strings.Contains(out, "Initializing default agents...") {
		t.Fatalf("agent list on empty roster: %q", out)
	}
}

func TestAgentShow(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	out := run(t, home, "agent", "show", "agent-techlead-001")
	if !strings.Contains(out, "Sarah Chen - Tech Lead") {
		t.Fatalf("agent show: %q", out)
	}
	out = run(t, home, "agent", "show", "agent-nobody")
	if !strings.Contains(out, "✗ Agent not found: agent-nobody") {
		t.Fatalf("agent show missing: %q", out)
	}
}

func TestProject_createListShowDelete(t *testing.T) {
	home := t.TempDir()
	id := createProject(t, home)

	out := run(t, home, "project", "list")
	if !strings.Contains(out, "● Site ("+id+")") || !strings.Contains(out, "marketing site") {
		t.Fatalf("project list: %q", out)
	}
	out = run(t, home, "project", "show", id)
	if !strings.Contains(out, "Project: Site") || !strings.Contains(out, "Tasks: 0") {
		t.Fatalf("project show: %q", out)
	}
	out = run(t, home, "project", "delete", id)
	if !strings.Contains(out, "✓ Deleted project "+id) {
		t.Fatalf("project delete: %q", out)
	}
	out = run(t, home, "project", "show", id)
	if !strings.Contains(out, "✗ Project not found: "+id) {
		t.Fatalf("project show after delete: %q", out)
	}
	out = run(t, home, "project", "list")
	if !strings.Contains(out, "No projects found.") {
		t.Fatalf("project list empty: %q", out)
	}
}

func TestProjectCreate_requiresName(t *testing.T) {
	if _, err := runErr(t, t.TempDir(), "project", "create", "--description", "x"); err == nil {
		t.Fatal("expected error without --name")
	}
}

func TestTaskCreate_unknownProject(t *testing.T) {
	home := t.TempDir()
	out := run(t, home, "task", "create", "--project", "proj-missing", "--title", "T", "--description", "d")
	if !strings.Contains(out, "✗ Project not found: proj-missing") {
		t.Fatalf("task create: %q", out)
	}
}

func TestTaskCreate_autoAssignSimulates(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	pid := createProject(t, home)
	out := run(t, home, "task", "create", "--project", pid, "--title", "Login", "--description", "fix login bug", "--auto-assign")
	if !strings.Contains(out, "  Assigned to: Taylor Johnson (QA)") {
		t.Fatalf("assignment: %q", out)
	}
	for _, want := range []string{
		"Jordan Lee (Product Owner):\n  I've created a new task: 'Login'.",
		"Sarah Chen (Tech Lead):\n  I've reviewed 'Login'",
		"Taylor Johnson (QA):\n  I'm taking on 'Login'.",
		"Marcus Thompson (Manager):\n  Great collaboration everyone on 'Login'!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Morgan Davis") {
		t.Error("no accessibility review expected for a non-UI task")
	}

	tid := taskIDPattern.FindStringSubmatch(out)[1]
	out = run(t, home, "task", "show", tid)
	if !strings.Contains(out, "Agent Collaboration (5 messages):") {
		t.Fatalf("task show: %q", out)
	}
	out = run(t, home, "agent", "show", "agent-qa-001")
	if !strings.Contains(out, "Login ("+tid+")") {
		t.Fatalf("agent current task: %q", out)
	}
}

func TestTask_moveAssignNoteDelete(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	pid := createProject(t, home)
	out := run(t, home, "task", "create", "--project", pid, "--title", "Docs", "--description", "write the readme")
	tid := taskIDPattern.FindStringSubmatch(out)[1]

	out = run(t, home, "task", "move", tid, "IN_PROGRESS")
	if !strings.Contains(out, "✓ Moved task 'Docs' to In Progress") {
		t.Fatalf("move: %q", out)
	}
	out = run(t, home, "task", "assign", tid, "agent-intern-001")
	if !strings.Contains(out, "✓ Assigned task 'Docs' to Jamie Park") {
		t.Fatalf("assign: %q", out)
	}
	out = run(t, home, "task", "note", tid, "draft ready")
	if !strings.Contains(out, "✓ Added note to task 'Docs'") {
		t.Fatalf("note: %q", out)
	}
	out = run(t, home, "task", "show", tid)
	for _, want := range []string{"Status: In Progress", "Assigned to: Jamie Park (Intern)", "] draft ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("show missing %q:\n%s", want, out)
		}
	}

	out = run(t, home, "task", "list", "--status", "IN_PROGRESS")
	if !strings.Contains(out, "┌─ In Progress (1)") || !strings.Contains(out, "│   Assigned to: Jamie Park (Intern)") {
		t.Fatalf("list: %q", out)
	}
	out = run(t, home, "task", "list", "--status", "DONE")
	if !strings.Contains(out, "No tasks found.") {
		t.Fatalf("list done: %q", out)
	}

	out = run(t, home, "task", "delete", tid)
	if !strings.Contains(out, "✓ Deleted task "+tid) {
		t.Fatalf("delete: %q", out)
	}
	out = run(t, home, "task", "move", tid, "DONE")
	if !strings.Contains(out, "✗ Task not found: "+tid) {
		t.Fatalf("move after delete: %q", out)
	}
}

func TestTaskMove_badStatus(t *testing.T) {
	if _, err := runErr(t, t.TempDir(), "task", "move", "task-1", "BLOCKED"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestTaskSimulate_accessibility(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	pid := createProject(t, home)
	out := run(t, home, "task", "create", "--project", pid, "--title", "Button", "--description", "redesign the user interface button", "--auto-assign")
	if !strings.Contains(out, "Assigned to: Sarah Chen (Tech Lead)") {
		t.Fatalf("assignment: %q", out)
	}
	if !strings.Contains(out, "Morgan Davis (Accessibility):\n  I'm reviewing 'Button' for accessibility.") {
		t.Fatalf("accessibility step missing:\n%s", out)
	}
}

func TestRoute(t *testing.T) {
	home := t.TempDir()
	out := run(t, home, "route", "add", "a", "new", "feature", "and", "fix", "the", "bug")
	if !strings.Contains(out, `Developer (matched "feature")`) {
		t.Fatalf("route: %q", out)
	}
	out = run(t, home, "route", "tidy up")
	if !strings.Contains(out, "Developer (default") {
		t.Fatalf("route default: %q", out)
	}
}

func TestSQLiteDriverFromSettings(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store:\n  driver: sqlite\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pid := createProject(t, home)
	if _, err := os.Stat(filepath.Join(home, "protected", "db.sqlite")); err != nil {
		t.Fatalf("sqlite db: %v", err)
	}
	out := run(t, home, "project", "show", pid)
	if !strings.Contains(out, "Project: Site") {
		t.Fatalf("project show: %q", out)
	}
}

func TestMetricsTextfile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "rooster.prom")
	pid := createProject(t, home)
	run(t, home, "--metrics-textfile", path, "task", "create", "--project", pid, "--title", "T", "--description", "d")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(data), "rooster_task_operations_total") || !strings.Contains(string(data), "rooster_tasks") {
		t.Fatalf("metrics textfile:\n%s", data)
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := runErr(t, t.TempDir(), "--log-level", "loud", "route", "x"); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestNuke(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	out := run(t, home, "nuke")
	if !strings.Contains(out, "Aborted.") {
		t.Fatalf("nuke without confirmation: %q", out)
	}
	out = run(t, home, "nuke", "--yes")
	if !strings.Contains(out, "Deleted.") {
		t.Fatalf("nuke --yes: %q", out)
	}
	if _, err := os.Stat(home); !os.IsNotExist(err) {
		t.Fatal("home should be removed")
	}
}

func TestNuke_metricsTextfileDoesNotRecreateHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "rooster")
	path := filepath.Join(t.TempDir(), "rooster.prom")
	run(t, home, "init")
	run(t, home, "--metrics-textfile", path, "nuke", "--yes")
	if _, err := os.Stat(home); !os.IsNotExist(err) {
		t.Fatalf("home should stay removed after metrics write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("metrics textfile: %v", err)
	}
}

func TestInit_writesSettingsOnce(t *testing.T) {
	home := t.TempDir()
	out := run(t, home, "init")
	if !strings.Contains(out, "✓ Wrote settings to "+filepath.Join(home, "config.yaml")) {
		t.Fatalf("init output: %q", out)
	}
	out = run(t, home, "init")
	if strings.Contains(out, "Wrote settings") {
		t.Fatalf("second init should keep existing settings: %q", out)
	}
}

func TestAgentList_role(t *testing.T) {
	home := t.TempDir()
	run(t, home, "init")
	out := run(t, home, "agent", "list", "--role", "QA")
	if !strings.Contains(out, "Taylor Johnson - QA") || strings.Contains(out, "Sarah Chen") {
		t.Fatalf("agent list --role QA: %q", out)
	}
	if _, err := runErr(t, home, "agent", "list", "--role", "Designer"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestProjectDelete_purgeWithoutRepo(t *testing.T) {
	home := t.TempDir()
	id := createProject(t, home)
	out := run(t, home, "project", "delete", "--purge", id)
	if !strings.Contains(out, "✓ Deleted project "+id) {
		t.Fatalf("project delete --purge: %q", out)
	}
}

func TestDoctor_reportsHomeSource(t *testing.T) {
	home := t.TempDir()
	// git may be missing on the test host; the home line is printed first either way.
	out, _ := runErr(t, home, "doctor")
	if !strings.Contains(out, "home: "+home+" (from --home)") {
		t.Fatalf("doctor output: %q", out)
	}
}
