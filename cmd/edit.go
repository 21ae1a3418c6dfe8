package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type editCmd struct {
	description string
	amount      string
	category    string
	typ         string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `mbk edit [-d <description>] [-a <amount>] [-c <category>] [-t <type>] [-date <date>] <id>

  Modifies the transaction with the given id. Only the fields passed as
  flags change, the rest keep their current values. The id itself never
  changes.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "New description")
	f.StringVar(&c.amount, "a", "", "New amount, a positive decimal")
	f.StringVar(&c.category, "c", "", "New category, see 'mbk topic categories'")
	f.StringVar(&c.typ, "t", "", "New type (income, expense)")
	f.StringVar(&c.date, "date", "", "New transaction date (YYYY-MM-DD)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "edit takes exactly one transaction id")
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

	// Start the edit session: the form comes back prefilled with the
	// transaction's current values.
	form, err := book.RequestEdit(id)
	if err != nil {
		printNotifications(book)
		return subcommands.ExitFailure
	}

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			form.Description = c.description
		case "a":
			form.Amount = c.amount
		case "c":
			form.Category = c.category
		case "t":
			form.Type = c.typ
		case "date":
			form.Date = c.date
		}
	})

	tx, err := book.SubmitForm(form)
	printNotifications(book)
	if err != nil {
		return subcommands.ExitUsageError
	}

	fmt.Printf("Updated transaction %d\n", tx.ID)
	return subcommands.ExitSuccess
}
