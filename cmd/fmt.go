package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ritaly/moneybook"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the stored ledger in canonical form"
}
func (*fmtCmd) Usage() string {
	return `mbk fmt

  Validates the stored ledger and writes it back in canonical form: one
  JSON object per line, stable key order, sorted by date then id. A ledger
  that does not decode is left exactly as it is.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore(logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	slot := moneybook.NewSlot(store, *slotName)
	ledger, err := slot.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := slot.Save(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d transactions.\n", ledger.Len())
	return subcommands.ExitSuccess
}
