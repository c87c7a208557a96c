// Package transfer moves the book collection in and out of CSV files. The
// isbn column is carried as an opaque string; values are written out and read
// back exactly as stored.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/booktracer/internal/database/books"
	"github.com/mrlokans/booktracer/internal/entities"
)

// Header is the CSV column layout shared by export and import.
var Header = []string{"id", "title", "author", "totalPages", "currentPage", "status", "isbn"}

// Exporter writes the full collection to CSV.
type Exporter struct {
	repo *books.Repository
}

func NewExporter(repo *books.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export writes every book, ordered by id, as CSV rows after the header.
func (e *Exporter) Export(w io.Writer) (int, error) {
	allBooks, err := e.repo.List(nil)
	if err != nil {
		return 0, fmt.Errorf("failed to list books: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, book := range allBooks {
		record := []string{
			strconv.FormatUint(uint64(book.ID), 10),
			book.Title,
			book.Author,
			strconv.Itoa(book.TotalPages),
			strconv.Itoa(book.CurrentPage),
			strconv.Itoa(int(book.Status)),
			book.ISBN,
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush records: %w", err)
	}
	return len(allBooks), nil
}

// ExportFile exports to the given path, creating or truncating the file.
func (e *Exporter) ExportFile(path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	return e.Export(file)
}

// Importer loads CSV rows into the collection. Every imported book gets a
// fresh id; ids found in the file are ignored.
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// ImportResult reports the outcome of an import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import reads CSV rows and inserts them inside a single transaction, so a
// failing insert leaves the collection untouched. Malformed rows are counted
// as skipped and do not abort the run; a failure of the reader itself does,
// since the reader makes no progress past it.
func (i *Importer) Import(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var result ImportResult
	var imported []entities.Book

	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Skipped++
				continue
			}
			return ImportResult{}, fmt.Errorf("failed to read records: %w", err)
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) < 7 {
			result.Skipped++
			continue
		}

		imported = append(imported, rowToBook(record))
	}

	err := i.db.Transaction(func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)
		for _, book := range imported {
			if _, err := repo.Add(&book); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import transaction failed: %w", err)
	}

	result.Imported = len(imported)
	return result, nil
}

// ImportFile imports from the given path.
func (i *Importer) ImportFile(path string) (ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	return i.Import(file)
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "id")
}

// rowToBook coerces a raw record into a valid book: unparseable numbers
// become 0, the current page is clamped into [0, totalPages] and the status
// into the known range.
func rowToBook(record []string) entities.Book {
	totalPages := atoiOrZero(record[3])
	if totalPages < 0 {
		totalPages = 0
	}
	currentPage := clamp(atoiOrZero(record[4]), 0, totalPages)
	status := clamp(atoiOrZero(record[5]), int(entities.StatusToRead), int(entities.StatusFinished))

	return entities.Book{
		Title:       record[1],
		Author:      record[2],
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Status:      entities.Status(status),
		ISBN:        record[6],
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
