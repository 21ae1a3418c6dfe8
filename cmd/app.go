// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/ritaly/moneybook"
	"github.com/ritaly/moneybook/kv"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

const (
	EnvHome     = "MONEYBOOK_HOME"
	EnvBackend  = "MONEYBOOK_BACKEND"
	EnvSlot     = "MONEYBOOK_SLOT"
	EnvCurrency = "MONEYBOOK_CURRENCY"
	EnvVerbose  = "MONEYBOOK_VERBOSE"
)

// Loaded before the flag defaults below, so a .env file in the working
// directory can provide the MONEYBOOK_* variables. Absence is not an error.
var _ = godotenv.Load()

// As a CLI application the process is short lived, so globals are fine here.
var (
	homeDir  = flag.String("home", envOr(EnvHome, defaultHome()), "Directory holding the ledger storage")
	backend  = flag.String("backend", envOr(EnvBackend, "file"), "Storage backend (file, sqlite)")
	slotName = flag.String("slot", envOr(EnvSlot, moneybook.DefaultSlot), "Name of the slot holding the ledger")
	currency = flag.String("currency", envOr(EnvCurrency, "EUR"), "ISO 4217 currency code used for display")
	verbose  = flag.Bool("v", os.Getenv(EnvVerbose) == "true", "Enable debug logging")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moneybook"
	}
	return filepath.Join(home, ".moneybook")
}

// logger builds the application logger honoring the -v flag.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore opens the key-value store selected by the -backend flag.
func openStore(log *slog.Logger) (kv.Store, error) {
	switch *backend {
	case "file":
		return kv.NewFileStore(*homeDir, log)
	case "sqlite":
		return kv.NewSQLiteStore(filepath.Join(*homeDir, "moneybook.db"), log)
	default:
		return nil, fmt.Errorf("unknown backend %q (want file or sqlite)", *backend)
	}
}

// openBook loads the ledger from its slot and wraps it into a command
// surface. The caller must Close the returned store.
func openBook(log *slog.Logger) (*moneybook.Book, kv.Store, error) {
	store, err := openStore(log)
	if err != nil {
		return nil, nil, err
	}
	slot := moneybook.NewSlot(store, *slotName)
	ledger, err := slot.Load()
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return moneybook.NewBook(ledger, log), store, nil
}

// printNotifications flushes the book's queued notifications to stderr.
func printNotifications(book *moneybook.Book) {
	for _, n := range book.Notifications() {
		switch n.Kind {
		case moneybook.NoteError:
			fmt.Fprintf(os.Stderr, "❌ %s\n", n.Message)
		case moneybook.NoteWarning:
			fmt.Fprintf(os.Stderr, "⚠️ %s\n", n.Message)
		default:
			fmt.Fprintf(os.Stderr, "✅ %s\n", n.Message)
		}
	}
}
