package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-trading/alor"
	"github.com/urfave/cli/v2"
)

func securities(c *cli.Context) error {
	client := newClient(c)

	found := client.GetSecurities(c.Context, alor.SecuritiesQuery{
		Query:    c.String("query"),
		Limit:    c.Int("limit"),
		Sector:   c.String("sector"),
		Exchange: c.String("exchange"),
	})

	tbl := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tbl, "Symbol\tExchange\tShortname\tLotsize\tMinstep\t")
	for _, s := range found {
		fmt.Fprintf(tbl, "%v\t%v\t%v\t%v\t%v\t\n",
			s["symbol"], s["exchange"], s["shortname"], s["lotsize"], s["minstep"])
	}
	tbl.Flush()

	return nil
}
