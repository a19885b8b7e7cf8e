package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"notekeeper/internal/server/models"
)

func (a *App) AddFolder(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter folder name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	parentID, err := a.askFolderID("Enter parent folder id (empty for root)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if _, err := a.folders.Create(ctx, a.token, name, parentID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Folder created")
	return nil
}

func (a *App) FolderTree(ctx context.Context) error {

	tree, err := a.folders.Tree(ctx, a.token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(tree) == 0 {
		fmt.Fprintln(a.out, "No folders")
		return nil
	}

	for _, root := range tree {
		a.printFolder(root, 0)
	}
	return nil
}

func (a *App) printFolder(node *models.FolderNode, depth int) {
	fmt.Fprintf(a.out, "%s%s (#%d)\n", strings.Repeat("  ", depth), node.Name, node.ID)
	for _, child := range node.Children {
		a.printFolder(child, depth+1)
	}
}

func (a *App) RenameFolder(ctx context.Context) error {

	id, err := a.mustFolderID("Enter folder id")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.folders.Rename(ctx, a.token, id, name); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Folder renamed")
	return nil
}

func (a *App) MoveFolder(ctx context.Context) error {

	id, err := a.mustFolderID("Enter folder id")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	parentID, err := a.askFolderID("Enter new parent id (empty for root)")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.folders.Move(ctx, a.token, id, parentID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Folder moved")
	return nil
}

func (a *App) DeleteFolder(ctx context.Context) error {

	id, err := a.mustFolderID("Enter folder id to delete")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.folders.Delete(ctx, a.token, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Folder deleted")
	return nil
}

func (a *App) mustFolderID(prompt string) (int64, error) {
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("folder id must be a number")
	}
	return id, nil
}
