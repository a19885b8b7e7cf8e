package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"notekeeper/internal/server/models"
)

func (a *App) AddNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Enter note content", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	folderID, err := a.askFolderID("Enter folder id (empty for none)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if _, err := a.notes.Create(ctx, a.token, title, content, folderID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Note created")
	return nil
}

func (a *App) ListNotes(ctx context.Context) error {

	previews, err := a.notes.List(ctx, a.token, 0)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.printPreviews(previews)
	return nil
}

func (a *App) ShowNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	note, err := a.notes.Get(ctx, a.token, title)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "# %s\n", note.Title)
	if len(note.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(note.Tags, ", "))
	}
	fmt.Fprintf(a.out, "modified: %s\n\n", note.ModifiedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(a.out, note.Content)
	return nil
}

func (a *App) EditNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Enter new content", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.notes.UpdateContent(ctx, a.token, title, content); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Note updated")
	return nil
}

func (a *App) RenameNote(ctx context.Context) error {

	oldTitle, err := GetSimpleText(a.reader, "Enter current title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	newTitle, err := GetSimpleText(a.reader, "Enter new title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.notes.Rename(ctx, a.token, oldTitle, newTitle); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Note renamed")
	return nil
}

func (a *App) DeleteNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title to delete", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.notes.Delete(ctx, a.token, title); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Note deleted")
	return nil
}

func (a *App) SearchNotes(ctx context.Context) error {

	query, err := GetSimpleText(a.reader, "Enter search query", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	previews, err := a.notes.Search(ctx, a.token, query)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.printPreviews(previews)
	return nil
}

func (a *App) TagNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	tags, err := GetTags(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	all, err := a.notes.AddTags(ctx, a.token, title, tags)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(all, ", "))
	return nil
}

func (a *App) MoveNote(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter note title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	folderID, err := a.askFolderID("Enter target folder id (empty for root)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.notes.SetFolder(ctx, a.token, title, folderID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Note moved")
	return nil
}

// askFolderID prompts for an optional numeric folder id. An empty answer
// returns nil.
func (a *App) askFolderID(prompt string) (*int64, error) {
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("folder id must be a number")
	}
	return &id, nil
}

func (a *App) printPreviews(previews []models.NotePreview) {
	if len(previews) == 0 {
		fmt.Fprintln(a.out, "No notes found")
		return
	}
	for _, p := range previews {
		line := fmt.Sprintf("[%s] %s", p.ModifiedAt.Format("2006-01-02 15:04"), p.Title)
		if len(p.Tags) > 0 {
			line += " (" + strings.Join(p.Tags, ", ") + ")"
		}
		fmt.Fprintln(a.out, line)
		if p.Preview != "" {
			fmt.Fprintf(a.out, "    %s\n", p.Preview)
		}
	}
}
