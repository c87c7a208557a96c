package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booktracer/internal/config"
	"github.com/mrlokans/booktracer/internal/database"
	"github.com/mrlokans/booktracer/internal/database/books"
	"github.com/mrlokans/booktracer/internal/transfer"
)

// ExportCSVCommand handles exporting the book collection to a CSV file
type ExportCSVCommand struct {
	OutputPath   string
	DatabasePath string
}

func NewExportCSVCommand() *ExportCSVCommand {
	return &ExportCSVCommand{}
}

func (cmd *ExportCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "file", config.DefaultExportPath, "Path of the CSV file to write")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-csv [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the whole book collection to a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s export-csv -file books.csv\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCSVCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	exporter := transfer.NewExporter(books.NewRepository(db.DB))
	exported, err := exporter.ExportFile(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported %d books to %s\n", exported, cmd.OutputPath)
	return nil
}
