package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `mbk rm [-y] <id>

  Deletes the transaction with the given id after asking for confirmation.
  Pass -y to skip the prompt. Declining leaves the ledger untouched.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "rm takes exactly one transaction id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid transaction id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	book, store, err := openBook(logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	confirmed := c.yes
	if !confirmed {
		tx, ok := book.Ledger().Find(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "no transaction with id %d\n", id)
			return subcommands.ExitFailure
		}
		fmt.Printf("Delete %q of %s? [y/N] ", tx.Description, tx.Date)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		confirmed = strings.EqualFold(strings.TrimSpace(answer), "y")
	}

	deleted, err := book.RequestDelete(id, confirmed)
	printNotifications(book)
	if err != nil {
		return subcommands.ExitFailure
	}
	if !deleted {
		fmt.Println("Kept.")
	}
	return subcommands.ExitSuccess
}
