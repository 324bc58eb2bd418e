package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dcastano/notas-cli/internal/client/forms"
	"github.com/dcastano/notas-cli/internal/client/models"
	"github.com/dcastano/notas-cli/internal/client/notes"
)

const recentListLimit = 10

type noteData struct {
	Title   string
	Content string
}

func validateNote(d noteData) map[string]string {
	errs := map[string]string{}
	if models.SanitizeText(d.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if models.SanitizeText(d.Content) == "" {
		errs["content"] = "content must not be empty"
	}
	return errs
}

// List reloads the cached list from the server and prints one line per note.
func (a *App) List(ctx context.Context) error {
	if err := a.store.Reload(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	items := a.store.Notes()
	if len(items) == 0 {
		printlnFn("No notes yet. Use 'add' to create one.")
		return nil
	}
	for _, n := range items {
		printNoteLine(n, time.Now())
	}
	return nil
}

// Show fetches and displays a single note by ID.
func (a *App) Show(ctx context.Context, id string) error {
	n, err := a.notes.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(n.Title)
	printlnFn(n.Content)
	printlnFn(fmt.Sprintf("created %s, updated %s",
		formatRelative(n.CreatedAt, time.Now()),
		formatRelative(n.UpdatedAt, time.Now())))
	return nil
}

// Add collects a title and a multi-line body and creates a new note. The
// cached list is refreshed by the store once the server accepts it.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.New(
		noteData{Title: title, Content: content},
		forms.WithValidator(validateNote),
		forms.WithSubmit(func(ctx context.Context, d noteData) error {
			_, err := a.store.Create(ctx, d.Title, d.Content)
			return err
		}),
	)

	if err := form.Submit(ctx); err != nil {
		printFormErrors(form.Errors())
		return err
	}

	printlnFn("Note created.")
	return nil
}

// Edit fetches a note, opens the edit dialog with its current values, asks
// for replacements and submits the change. Pressing Enter on the title or
// leaving the body empty keeps the stored value. The dialog closes only
// when the server accepts the update, mirroring a failed save keeping the
// edit window open.
func (a *App) Edit(ctx context.Context, id string) error {
	current, err := a.notes.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.editDialog.Open(current)
	defer func() {
		if a.editDialog.IsOpen() {
			a.editDialog.Close()
		}
	}()

	printlnFn(fmt.Sprintf("Editing %q (leave a field empty to keep it)", current.Title))

	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "New note text:", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}
	if content == "" {
		content = current.Content
	}

	form := forms.New(
		noteData{Title: current.Title, Content: current.Content},
		forms.WithValidator(validateNote),
		forms.WithSubmit(func(ctx context.Context, d noteData) error {
			_, err := a.store.Update(ctx, id, notes.Update{Title: &d.Title, Content: &d.Content})
			return err
		}),
	)
	form.SetField("title", func(d *noteData) { d.Title = title })
	form.SetField("content", func(d *noteData) { d.Content = content })

	if err := form.Submit(ctx); err != nil {
		printFormErrors(form.Errors())
		return err
	}

	a.editDialog.Close()
	printlnFn("Note updated.")
	return nil
}

// Delete removes a note after an explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.confirm("This permanently deletes the note."); err != nil {
		return err
	}
	if err := a.store.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Note deleted.")
	return nil
}

// Search prints the notes whose title or content contains the query.
func (a *App) Search(ctx context.Context, query string) error {
	found, err := a.notes.Search(ctx, query)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("No notes match", fmt.Sprintf("%q.", query))
		return nil
	}
	for _, n := range found {
		printNoteLine(n, time.Now())
	}
	return nil
}

// Recent prints the most recently updated notes.
func (a *App) Recent(ctx context.Context) error {
	items, err := a.notes.Recent(ctx, recentListLimit)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No notes yet.")
		return nil
	}
	for _, n := range items {
		printNoteLine(n, time.Now())
	}
	return nil
}

// Stats prints note counters: total, created in the last day, created in
// the last week.
func (a *App) Stats(ctx context.Context) error {
	st, err := a.notes.GetStats(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Total notes:    ", st.Total)
	printlnFn("Last 24 hours:  ", st.Recent)
	printlnFn("Last 7 days:    ", st.ThisWeek)
	return nil
}
