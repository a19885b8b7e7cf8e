package cli

import (
	"context"
	"fmt"
)

func (a *App) Stats(ctx context.Context) error {

	s, err := a.stats.Get(ctx, a.token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Notes: %d\n", s.NoteCount)
	fmt.Fprintf(a.out, "Tags:  %d\n", s.TagCount)
	fmt.Fprintf(a.out, "Todos: %d\n", s.TodoCount)
	if s.RecentNote != nil {
		fmt.Fprintf(a.out, "Most recent note: %s (%s)\n",
			s.RecentNote.Title, s.RecentNote.ModifiedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
