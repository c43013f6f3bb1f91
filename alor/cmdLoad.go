package main

import (
	"github.com/go-trading/alor"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func load(c *cli.Context) error {
	client := newClient(c)

	for _, ticker := range c.StringSlice("ticker") {
		instrument := alor.NewInstrument(ticker, c.String("exchange"))
		candles := alor.NewCandles(client, instrument, c.Duration("candles-period"))
		err := candles.Load(c.Context, *c.Timestamp("from"), *c.Timestamp("to"))
		if err != nil {
			l.Fatal("не смог скачать", zap.Stringer("instrument", instrument), zap.Error(err))
		}
		err = candles.Save(c.Path("data"))
		if err != nil {
			l.DPanic("не смог сохранить свечи", zap.Error(err))
		}
	}
	return nil
}
