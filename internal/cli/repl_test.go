package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// execStub records which commands the REPL dispatched.
type execStub struct {
	loggedIn bool
	calls    []string
}

func (s *execStub) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *execStub) isLoggedIn() bool                   { return s.loggedIn }
func (s *execStub) Register(context.Context) error     { return s.record("register") }
func (s *execStub) Login(context.Context) error        { return s.record("login") }
func (s *execStub) Logout(context.Context) error       { return s.record("logout") }
func (s *execStub) AddNote(context.Context) error      { return s.record("addnote") }
func (s *execStub) ListNotes(context.Context) error    { return s.record("listnotes") }
func (s *execStub) ShowNote(context.Context) error     { return s.record("shownote") }
func (s *execStub) EditNote(context.Context) error     { return s.record("editnote") }
func (s *execStub) RenameNote(context.Context) error   { return s.record("renamenote") }
func (s *execStub) DeleteNote(context.Context) error   { return s.record("deletenote") }
func (s *execStub) SearchNotes(context.Context) error  { return s.record("search") }
func (s *execStub) TagNote(context.Context) error      { return s.record("tag") }
func (s *execStub) MoveNote(context.Context) error     { return s.record("movenote") }
func (s *execStub) AddFolder(context.Context) error    { return s.record("addfolder") }
func (s *execStub) FolderTree(context.Context) error   { return s.record("tree") }
func (s *execStub) RenameFolder(context.Context) error { return s.record("renamefolder") }
func (s *execStub) MoveFolder(context.Context) error   { return s.record("movefolder") }
func (s *execStub) DeleteFolder(context.Context) error { return s.record("deletefolder") }
func (s *execStub) AddTodo(context.Context) error      { return s.record("addtodo") }
func (s *execStub) ListTodos(context.Context) error    { return s.record("listtodos") }
func (s *execStub) ToggleTodo(context.Context) error   { return s.record("toggle") }
func (s *execStub) DeleteTodo(context.Context) error   { return s.record("deletetodo") }
func (s *execStub) Stats(context.Context) error        { return s.record("stats") }

func runScript(t *testing.T, stub *execStub, script string) []string {
	t.Helper()

	oldPrintln := printlnFn
	defer func() { printlnFn = oldPrintln }()
	var printed []string
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "test" }, scanner)
	return printed
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &execStub{loggedIn: true}

	runScript(t, stub, "login\nadd\nlist\ntodos\ntoggle\ntree\nstats\nexit\n")

	assert.Equal(t,
		[]string{"login", "addnote", "listnotes", "listtodos", "toggle", "tree", "stats"},
		stub.calls)
}

func TestREPL_ListAlias(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "l\nquit\n")
	assert.Equal(t, []string{"listnotes"}, stub.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	stub := &execStub{}
	printed := runScript(t, stub, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, printed, "Unknown command:")
}

func TestREPL_SkipsBlankLinesAndExitsOnEOF(t *testing.T) {
	stub := &execStub{}
	runScript(t, stub, "\n   \n")
	assert.Empty(t, stub.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	loggedOut := &execStub{loggedIn: false}
	printed := runScript(t, loggedOut, "help\nexit\n")
	assert.Contains(t, strings.Join(printed, "\n"), "register, login")

	loggedIn := &execStub{loggedIn: true}
	printed = runScript(t, loggedIn, "help\nexit\n")
	assert.Contains(t, strings.Join(printed, "\n"), "logout")
}
