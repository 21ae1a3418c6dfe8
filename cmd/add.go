package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ritaly/moneybook"
)

type addCmd struct {
	description string
	amount      string
	category    string
	typ         string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `mbk add -d <description> -a <amount> -c <category> -t <type> [-date <date>]

  Records a new transaction and saves the ledger immediately. The amount is
  a positive magnitude; whether it counts as money in or out comes from the
  type (income, expense).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the transaction")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal")
	f.StringVar(&c.category, "c", string(moneybook.Other), "Category, see 'mbk topic categories'")
	f.StringVar(&c.typ, "t", string(moneybook.Expense), "Type (income, expense)")
	f.StringVar(&c.date, "date", "", "Transaction date (YYYY-MM-DD), defaults to today")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := openBook(logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	tx, err := book.SubmitForm(moneybook.Form{
		Description: c.description,
		Amount:      c.amount,
		Category:    c.category,
		Type:        c.typ,
		Date:        c.date,
	})
	printNotifications(book)
	if err != nil {
		return subcommands.ExitUsageError
	}

	fmt.Printf("Recorded transaction %d on %s\n", tx.ID, tx.Date)
	return subcommands.ExitSuccess
}
