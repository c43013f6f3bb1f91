package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-trading/alor"
	"github.com/urfave/cli/v2"
)

func quotes(c *cli.Context) error {
	client := newClient(c)

	instruments := make([]alor.Instrument, 0, len(c.StringSlice("ticker")))
	for _, ticker := range c.StringSlice("ticker") {
		instruments = append(instruments, alor.NewInstrument(ticker, c.String("exchange")))
	}
	found := client.GetQuotes(c.Context, instruments, alor.FormatSimple)

	tbl := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tbl, "Symbol\tLast\tBid\tAsk\tVolume\t")
	for _, q := range found {
		fmt.Fprintf(tbl, "%v\t%v\t%v\t%v\t%v\t\n",
			q["symbol"], q["last_price"], q["bid"], q["ask"], q["volume"])
	}
	tbl.Flush()

	return nil
}
