package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func portfolios(c *cli.Context) error {
	client := newClient(c)

	result := client.GetPortfolios(c.Context)
	if len(result) == 0 {
		l.Fatal("не смог получить список портфелей")
	}

	tbl := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tbl, "Server\tPortfolio\tTradeServerCode\t")

	servers := make([]string, 0, len(result))
	for server := range result {
		servers = append(servers, server)
	}
	sort.Strings(servers)

	for _, server := range servers {
		entries, ok := result[server].([]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			p, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			fmt.Fprintf(tbl, "%s\t%v\t%v\t\n", server, p["portfolio"], p["tradeServerCode"])
		}
	}
	tbl.Flush()

	return nil
}
