// Package ui implements the interactive terminal session: startup checks,
// the main menu and the prompts behind each action.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/booktracer/internal/config"
	"github.com/mrlokans/booktracer/internal/database"
	"github.com/mrlokans/booktracer/internal/database/books"
	"github.com/mrlokans/booktracer/internal/database/settings"
	"github.com/mrlokans/booktracer/internal/entities"
	"github.com/mrlokans/booktracer/internal/isbn"
	"github.com/mrlokans/booktracer/internal/metadata"
	"github.com/mrlokans/booktracer/internal/transfer"
)

const maxID = 1<<31 - 1

// Session drives one interactive run. The lookup chain is assembled once,
// after the startup checks, and holds only the sources that passed.
type Session struct {
	in       *bufio.Reader
	cfg      *config.Config
	books    *books.Repository
	settings *settings.Repository
	chain    *metadata.Chain
	exporter *transfer.Exporter
	importer *transfer.Importer

	dailyRate int
	eof       bool
}

func NewSession(db *database.Database, cfg *config.Config) *Session {
	bookRepo := books.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	return &Session{
		in:        bufio.NewReader(os.Stdin),
		cfg:       cfg,
		books:     bookRepo,
		settings:  settingsRepo,
		exporter:  transfer.NewExporter(bookRepo),
		importer:  transfer.NewImporter(db.DB),
		dailyRate: settingsRepo.DailyRate(),
	}
}

// Run performs the startup checks and enters the menu loop. It returns when
// the user exits, chooses to quit after a failed check, or input ends.
func (s *Session) Run() error {
	if !s.startupChecks() {
		return nil
	}

	for !s.eof {
		s.printMenu()
		choice := s.askInt("> ", 1, 12)
		if s.eof {
			break
		}
		fmt.Println()

		switch choice {
		case 1:
			s.listBooks()
		case 2:
			s.addManual()
		case 3:
			s.addByISBN()
		case 4:
			s.updatePage()
		case 5:
			s.changeStatus()
		case 6:
			s.removeBook()
		case 7:
			s.searchBooks()
		case 8:
			s.listByStatus()
		case 9:
			s.setDailyRate()
		case 10:
			s.exportCSV()
		case 11:
			s.importCSV()
		case 12:
			fmt.Println("Bye!")
			return nil
		}
		fmt.Println()
	}
	return nil
}

// startupChecks probes connectivity and assembles the lookup chain from the
// sources that passed. Returns false when the user chooses to exit instead of
// continuing degraded.
func (s *Session) startupChecks() bool {
	fmt.Println("Running startup checks...")

	ol := metadata.NewOpenLibraryClient(s.cfg.Lookup.Timeout)
	gb := metadata.NewGoogleBooksClient(s.cfg.GoogleBooks.APIKey, s.cfg.Lookup.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Lookup.Timeout)
	defer cancel()

	report := metadata.Probe(ctx, ol, gb)

	printCheck("Internet connection", report.Internet)
	printCheck("Google Books API key", report.KeyPresent)
	printCheck("Google Books API", report.GoogleReady)
	printCheck("Open Library", report.OpenLibrary)
	fmt.Println()

	var sources []metadata.Source
	if report.OpenLibrary {
		sources = append(sources, ol)
	}
	if report.GoogleReady {
		sources = append(sources, gb)
	}

	if report.OpenLibrary && !report.GoogleReady {
		fmt.Println("Google Books is not available this session.")
		fmt.Println("  1) Exit now and fix the API key")
		fmt.Println("  2) Continue with Open Library only")
		if s.askInt("> ", 1, 2) == 1 {
			return false
		}
		fmt.Println()
	} else if len(sources) == 0 {
		fmt.Println("No metadata source is reachable; ISBN lookups are disabled this session.")
		fmt.Println()
	}

	s.chain = metadata.NewChain(sources...)
	return true
}

func printCheck(name string, passed bool) {
	verdict := "FAILED"
	if passed {
		verdict = "Passed!"
	}
	fmt.Printf("%-36s %s\n", name+"...", verdict)
}

func (s *Session) printMenu() {
	fmt.Println("==== BookTracer ====")
	fmt.Println(" 1) List all books")
	fmt.Println(" 2) Add a book manually")
	fmt.Println(" 3) Add a book by ISBN")
	fmt.Println(" 4) Update current page")
	fmt.Println(" 5) Change status")
	fmt.Println(" 6) Remove a book")
	fmt.Println(" 7) Search by title or author")
	fmt.Println(" 8) List books by status")
	fmt.Println(" 9) Set daily reading rate")
	fmt.Println("10) Export collection to CSV")
	fmt.Println("11) Import collection from CSV")
	fmt.Println("12) Exit")
}

func (s *Session) listBooks() {
	s.printBooks(nil)
}

func (s *Session) printBooks(filter *entities.Status) {
	allBooks, err := s.books.List(filter)
	if err != nil {
		fmt.Printf("Failed to list books: %v\n", err)
		return
	}
	if len(allBooks) == 0 {
		fmt.Println("No books yet.")
		return
	}

	printTableHeader()
	for _, book := range allBooks {
		printBookRow(book, s.dailyRate)
	}
}

func (s *Session) addManual() {
	title := s.askLine("Title: ", false)
	if s.eof && title == "" {
		return
	}
	author := s.askLine("Author (optional): ", true)

	code := s.askLine("ISBN (optional): ", true)
	if code != "" {
		normalized := isbn.Normalize(code)
		if normalized == "" {
			fmt.Println("Invalid ISBN, leaving it blank.")
		}
		code = normalized
	}

	s.finishAdd(title, author, 0, code)
}

func (s *Session) addByISBN() {
	raw := s.askLine("ISBN: ", false)
	if s.eof && raw == "" {
		return
	}

	normalized := isbn.Normalize(raw)
	if normalized == "" {
		fmt.Println("Invalid ISBN.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Lookup.Timeout)
	defer cancel()

	result, err := s.chain.Lookup(ctx, normalized)
	if err != nil {
		fmt.Printf("No metadata found for %s; entering manually.\n", normalized)
		title := s.askLine("Title: ", false)
		if s.eof && title == "" {
			return
		}
		author := s.askLine("Author (optional): ", true)
		s.finishAdd(title, author, 0, normalized)
		return
	}

	fmt.Printf("Found via %s:\n", result.Source)
	fmt.Printf("  Title:  %s\n", result.Title)
	if result.Author != "" {
		fmt.Printf("  Author: %s\n", result.Author)
	}
	if result.PageCount > 0 {
		fmt.Printf("  Pages:  %d\n", result.PageCount)
	}

	s.finishAdd(result.Title, result.Author, result.PageCount, normalized)
}

// finishAdd asks for the page position and status, then inserts the book. A
// page count already known from a lookup is offered as the default total; a
// blank status answer falls back to the one the page position implies.
func (s *Session) finishAdd(title, author string, knownPages int, code string) {
	var totalPages int
	if knownPages > 0 {
		totalPages = s.askIntDefault(
			fmt.Sprintf("Total pages [default %d]: ", knownPages),
			0, maxID, knownPages)
	} else {
		totalPages = s.askInt("Total pages: ", 0, maxID)
	}
	currentPage := s.askIntDefault(
		fmt.Sprintf("Current page [0-%d, default 0]: ", totalPages),
		0, totalPages, 0)
	status := s.askStatusDefault(deriveStatus(totalPages, currentPage))

	s.insertBook(&entities.Book{
		Title:       title,
		Author:      author,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Status:      status,
		ISBN:        code,
	})
}

func (s *Session) insertBook(book *entities.Book) {
	id, err := s.books.Add(book)
	if err != nil {
		fmt.Printf("Failed to add book: %v\n", err)
		return
	}
	fmt.Printf("Added \"%s\" with id %d.\n", book.Title, id)
}

func (s *Session) updatePage() {
	id := uint(s.askInt("Book id: ", 1, maxID))
	book, err := s.books.Get(id)
	if err != nil {
		fmt.Printf("No book with id %d.\n", id)
		return
	}

	currentPage := s.askInt(
		fmt.Sprintf("Current page [0-%d]: ", book.TotalPages),
		0, book.TotalPages)
	status := deriveStatus(book.TotalPages, currentPage)

	if err := s.books.UpdateProgress(id, currentPage, status); err != nil {
		fmt.Printf("Failed to update book: %v\n", err)
		return
	}
	fmt.Printf("Updated \"%s\" to page %d (%s).\n", book.Title, currentPage, status)
}

func (s *Session) changeStatus() {
	id := uint(s.askInt("Book id: ", 1, maxID))
	book, err := s.books.Get(id)
	if err != nil {
		fmt.Printf("No book with id %d.\n", id)
		return
	}

	status, ok := s.askStatus()
	if !ok {
		return
	}

	if err := s.books.SetStatus(id, status); err != nil {
		fmt.Printf("Failed to update book: %v\n", err)
		return
	}
	fmt.Printf("Marked \"%s\" as %s.\n", book.Title, status)
}

// askStatusDefault prompts for a status, accepting a blank answer as def.
func (s *Session) askStatusDefault(def entities.Status) entities.Status {
	for {
		line := s.askLine("Status (to-read/reading/finished, Enter for auto): ", true)
		if line == "" {
			return def
		}
		status, ok := entities.ParseStatus(line)
		if ok {
			return status
		}
		fmt.Println("Unknown status.")
		if s.eof {
			return def
		}
	}
}

func (s *Session) askStatus() (entities.Status, bool) {
	for {
		line := s.askLine("Status (to-read/reading/finished): ", false)
		if s.eof && line == "" {
			return entities.StatusToRead, false
		}
		status, ok := entities.ParseStatus(line)
		if ok {
			return status, true
		}
		fmt.Println("Unknown status.")
		if s.eof {
			return entities.StatusToRead, false
		}
	}
}

func (s *Session) removeBook() {
	id := uint(s.askInt("Book id: ", 1, maxID))
	book, err := s.books.Get(id)
	if err != nil {
		fmt.Printf("No book with id %d.\n", id)
		return
	}

	answer := s.askLine(fmt.Sprintf("Remove \"%s\"? [y/N]: ", book.Title), true)
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return
	}

	if err := s.books.Remove(id); err != nil {
		fmt.Printf("Failed to remove book: %v\n", err)
		return
	}
	fmt.Printf("Removed \"%s\".\n", book.Title)
}

func (s *Session) searchBooks() {
	query := s.askLine("Search: ", false)
	if s.eof && query == "" {
		return
	}

	results, err := s.books.Search(query)
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("Nothing found.")
		return
	}

	printTableHeader()
	for _, book := range results {
		printBookRow(book, s.dailyRate)
	}
}

func (s *Session) listByStatus() {
	status, ok := s.askStatus()
	if !ok {
		return
	}
	s.printBooks(&status)
}

func (s *Session) setDailyRate() {
	fmt.Printf("Current daily reading rate: %d pages/day.\n", s.dailyRate)
	rate := s.askInt("New rate (0 disables estimates): ", 0, maxID)

	if err := s.settings.SetDailyRate(rate); err != nil {
		fmt.Printf("Failed to save the rate: %v\n", err)
		return
	}
	s.dailyRate = rate
	fmt.Printf("Daily reading rate set to %d pages/day.\n", rate)
}

func (s *Session) exportCSV() {
	path := s.askLine(fmt.Sprintf("Export path [default %s]: ", s.cfg.Transfer.ExportPath), true)
	if path == "" {
		path = s.cfg.Transfer.ExportPath
	}

	exported, err := s.exporter.ExportFile(path)
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Exported %d books to %s.\n", exported, path)
}

func (s *Session) importCSV() {
	path := s.askLine("Import path: ", false)
	if s.eof && path == "" {
		return
	}

	result, err := s.importer.ImportFile(path)
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		return
	}
	fmt.Printf("Imported %d books", result.Imported)
	if result.Skipped > 0 {
		fmt.Printf(" (%d malformed rows skipped)", result.Skipped)
	}
	fmt.Println(".")
}

// deriveStatus picks the status implied by the page position: everything
// read means Finished, any progress means Reading, otherwise To-Read. A book
// without a known page count stays To-Read until explicitly marked.
func deriveStatus(totalPages, currentPage int) entities.Status {
	switch {
	case totalPages > 0 && currentPage >= totalPages:
		return entities.StatusFinished
	case currentPage > 0:
		return entities.StatusReading
	default:
		return entities.StatusToRead
	}
}
