package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booktracer/internal/config"
	"github.com/mrlokans/booktracer/internal/database"
	"github.com/mrlokans/booktracer/internal/transfer"
)

// ImportCSVCommand handles importing books from a CSV file
type ImportCSVCommand struct {
	InputPath    string
	DatabasePath string
}

func NewImportCSVCommand() *ImportCSVCommand {
	return &ImportCSVCommand{}
}

func (cmd *ImportCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-csv", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "file", "", "Path of the CSV file to read (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-csv -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import books from a CSV file into the collection. All rows are inserted\n")
		fmt.Fprintf(os.Stderr, "in one transaction; ids in the file are ignored and fresh ones assigned.\n\n")
		fmt.Fprintf(os.Stderr, "Expected columns:\n")
		fmt.Fprintf(os.Stderr, "  id,title,author,totalPages,currentPage,status,isbn\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s import-csv -file books.csv\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.InputPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportCSVCommand) Run() error {
	if _, err := os.Stat(cmd.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("import file not found: %s", cmd.InputPath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	importer := transfer.NewImporter(db.DB)
	result, err := importer.ImportFile(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d books", result.Imported)
	if result.Skipped > 0 {
		fmt.Printf(" (%d malformed rows skipped)", result.Skipped)
	}
	fmt.Println()
	return nil
}
