package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ritaly/moneybook/renderer"
)

type listCmd struct {
	filter string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display transactions, most recent first" }
func (*listCmd) Usage() string {
	return `mbk list [-f <filter>]

  Displays the transactions, most recent first. The filter narrows the view
  to one type (all, income, expense) without touching the ledger.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "f", "all", "Filter (all, income, expense)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := openBook(logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := book.SelectFilter(c.filter); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	view := book.Projection()
	printMarkdown(renderer.RenderList(renderer.NewList(view, book.Filter(), *currency)))
	return subcommands.ExitSuccess
}
