package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddNote(ctx context.Context) error
	ListNotes(ctx context.Context) error
	ShowNote(ctx context.Context) error
	EditNote(ctx context.Context) error
	RenameNote(ctx context.Context) error
	DeleteNote(ctx context.Context) error
	SearchNotes(ctx context.Context) error
	TagNote(ctx context.Context) error
	MoveNote(ctx context.Context) error
	AddFolder(ctx context.Context) error
	FolderTree(ctx context.Context) error
	RenameFolder(ctx context.Context) error
	MoveFolder(ctx context.Context) error
	DeleteFolder(ctx context.Context) error
	AddTodo(ctx context.Context) error
	ListTodos(ctx context.Context) error
	ToggleTodo(ctx context.Context) error
	DeleteTodo(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the notekeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("notes> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Notes:   add, (l)ist, show, edit, rename, delete, search, tag, move")
				printlnFn("Folders: mkdir, tree, renamedir, movedir, rmdir")
				printlnFn("Todos:   todo, todos, toggle, rmtodo")
				printlnFn("Other:   stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddNote(ctx)

		case "l", "list":
			_ = a.ListNotes(ctx)

		case "show":
			_ = a.ShowNote(ctx)

		case "edit":
			_ = a.EditNote(ctx)

		case "rename":
			_ = a.RenameNote(ctx)

		case "delete":
			_ = a.DeleteNote(ctx)

		case "search":
			_ = a.SearchNotes(ctx)

		case "tag":
			_ = a.TagNote(ctx)

		case "move":
			_ = a.MoveNote(ctx)

		case "mkdir":
			_ = a.AddFolder(ctx)

		case "tree":
			_ = a.FolderTree(ctx)

		case "renamedir":
			_ = a.RenameFolder(ctx)

		case "movedir":
			_ = a.MoveFolder(ctx)

		case "rmdir":
			_ = a.DeleteFolder(ctx)

		case "todo":
			_ = a.AddTodo(ctx)

		case "todos":
			_ = a.ListTodos(ctx)

		case "toggle":
			_ = a.ToggleTodo(ctx)

		case "rmtodo":
			_ = a.DeleteTodo(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
