package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func serverTime(c *cli.Context) error {
	client := newClient(c)

	t := client.GetTime(c.Context, false)
	if t.IsZero() {
		l.Fatal("не смог получить время биржи")
	}
	fmt.Println(t)

	return nil
}
