package parser

import (
	"fmt"

	"tableflip.dev/weddingbook/pkg/runner"
)

// Usage describes one command for the help listing.
type Usage struct {
	Keyword     string
	Format      string
	Description string
}

var usages = []Usage{
	{runner.KeywordAdd, "add n/NAME p/PHONE e/EMAIL r/ROLE a/ADDRESS [t/WEDDING]...", "Adds a person."},
	{runner.KeywordEdit, "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [r/ROLE] [a/ADDRESS] [t/WEDDING]...", "Edits the person at INDEX. A lone t/ removes all tags."},
	{runner.KeywordDelete, "delete INDEX", "Deletes the person at INDEX."},
	{runner.KeywordClear, "clear", "Deletes every person."},
	{runner.KeywordList, "list", "Lists every person."},
	{runner.KeywordFind, "find KEYWORD [MORE_KEYWORDS]...", "Lists persons whose name or role contains any keyword."},
	{runner.KeywordFilter, "filter WEDDING", "Lists persons tagged with WEDDING."},
	{runner.KeywordTag, "tag INDEX WEDDING", "Tags the person at INDEX with WEDDING."},
	{runner.KeywordUntag, "untag INDEX WEDDING", "Removes WEDDING from the person at INDEX."},
	{runner.KeywordAddWedding, "addWedding n/NAME d/DATE l/LOCATION", "Adds a wedding."},
	{runner.KeywordEditWedding, "editWedding WEDDING [n/NAME] [d/DATE] [l/LOCATION]", "Edits a wedding."},
	{runner.KeywordDeleteWedding, "deleteWedding WEDDING", "Deletes a wedding and untags everyone from it."},
	{runner.KeywordListWedding, "listWedding", "Lists every wedding."},
	{runner.KeywordListWeddingByDate, "listWeddingByDate d/DATE", "Lists weddings on DATE."},
	{runner.KeywordSortWeddingByID, "sortWID", "Sorts weddings by ID."},
	{runner.KeywordSortWeddingByDate, "sortWDate", "Sorts weddings by date."},
	{runner.KeywordAddTask, "addTask w/WEDDING d/DESCRIPTION", "Adds a task to a wedding."},
	{runner.KeywordDeleteTask, "deleteTask w/WEDDING i/INDEX", "Deletes a task from a wedding."},
	{runner.KeywordMarkTask, "mark w/WEDDING i/INDEX", "Marks a task as done."},
	{runner.KeywordUnmarkTask, "unmark w/WEDDING i/INDEX", "Marks a task as not done."},
	{runner.KeywordListTask, "listTask w/WEDDING", "Lists the tasks of a wedding."},
	{runner.KeywordConfirm, "y", "Confirms the command awaiting confirmation."},
	{runner.KeywordHelp, "help", "Shows this list."},
	{runner.KeywordExit, "exit", "Quits."},
}

// Usages returns the help entry of every command, in listing order.
func Usages() []Usage {
	out := make([]Usage, len(usages))
	copy(out, usages)
	return out
}

func usage(word string) string {
	for _, u := range usages {
		if u.Keyword == word {
			return fmt.Sprintf("%s: %s\nUsage: %s", u.Keyword, u.Description, u.Format)
		}
	}
	return ""
}
