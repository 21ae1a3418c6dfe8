package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ritaly/moneybook/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expense and balance totals" }
func (*summaryCmd) Usage() string {
	return `mbk summary

  Displays the full-ledger totals: income, expense and balance. The totals
  always cover every transaction, regardless of any list filter.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := openBook(logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(book.Aggregates(), *currency)))
	return subcommands.ExitSuccess
}
