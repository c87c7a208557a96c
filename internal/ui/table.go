package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrlokans/booktracer/internal/entities"
	"github.com/mrlokans/booktracer/internal/progress"
)

const (
	titleWidth  = 33
	authorWidth = 20
)

func printTableHeader() {
	fmt.Printf("%-4s %-*s %-*s %-11s %-7s %-9s %-5s %s\n",
		"ID", titleWidth, "Title", authorWidth, "Author",
		"Pages", "%", "Status", "ETA", "ISBN")
	fmt.Println(strings.Repeat("-", 100))
}

func printBookRow(book entities.Book, dailyRate int) {
	pages := strconv.Itoa(book.CurrentPage) + "/" + strconv.Itoa(book.TotalPages)

	eta := "-"
	if days, ok := progress.DaysToFinish(book, dailyRate); ok {
		eta = strconv.Itoa(days) + "d"
	}

	isbn := book.ISBN
	if isbn == "" {
		isbn = "-"
	}

	fmt.Printf("%-4d %-*s %-*s %-11s %6.1f%% %-9s %-5s %s\n",
		book.ID,
		titleWidth, truncate(book.Title, titleWidth),
		authorWidth, truncate(book.Author, authorWidth),
		pages,
		progress.PercentComplete(book),
		book.Status.String(),
		eta,
		isbn)
}

// truncate shortens s to at most max display runes, replacing the tail with
// an ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
