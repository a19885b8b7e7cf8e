package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"notekeeper/internal/server/models"
	"notekeeper/internal/server/services"
)

func (a *App) AddTodo(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter todo title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	dueDate, err := GetSimpleText(a.reader, "Enter due date (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	priority, err := GetSimpleText(a.reader, "Enter priority: low, normal or high (empty for normal)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	tags, err := GetTags(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	noteTitle, err := GetSimpleText(a.reader, "Link to note title (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	_, err = a.todos.Create(ctx, a.token, services.CreateTodoInput{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Tags:        tags,
		NoteTitle:   noteTitle,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Todo created")
	return nil
}

func (a *App) ListTodos(ctx context.Context) error {

	filter, err := a.askTodoFilter()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	todos, err := a.todos.List(ctx, a.token, filter)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(todos) == 0 {
		fmt.Fprintln(a.out, "No todos found")
		return nil
	}

	for _, t := range todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] #%d %s (%s)", mark, t.ID, t.Title, t.Priority)
		if t.DueDate != nil {
			line += " due " + *t.DueDate
		}
		if t.NoteTitle != nil {
			line += " -> " + *t.NoteTitle
		}
		if len(t.Tags) > 0 {
			line += " (" + strings.Join(t.Tags, ", ") + ")"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) ToggleTodo(ctx context.Context) error {

	id, err := a.askTodoID()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.todos.Toggle(ctx, a.token, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Todo toggled")
	return nil
}

func (a *App) DeleteTodo(ctx context.Context) error {

	id, err := a.askTodoID()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.todos.Delete(ctx, a.token, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Todo deleted")
	return nil
}

func (a *App) askTodoID() (int64, error) {
	raw, err := GetSimpleText(a.reader, "Enter todo id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("todo id must be a number")
	}
	return id, nil
}

// askTodoFilter reads the optional list filters. Empty answers leave a
// filter unset.
func (a *App) askTodoFilter() (models.TodoFilter, error) {
	var f models.TodoFilter

	status, err := GetSimpleText(a.reader, "Filter by status: open or done (empty for all)", a.out)
	if err != nil {
		return f, err
	}
	tag, err := GetSimpleText(a.reader, "Filter by tag (empty for all)", a.out)
	if err != nil {
		return f, err
	}
	priority, err := GetSimpleText(a.reader, "Filter by priority (empty for all)", a.out)
	if err != nil {
		return f, err
	}
	note, err := GetSimpleText(a.reader, "Filter by linked note title (empty for all)", a.out)
	if err != nil {
		return f, err
	}

	f.Status = status
	f.Tag = tag
	f.Priority = priority
	f.NoteTitle = note
	return f, nil
}
