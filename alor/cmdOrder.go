package main

import (
	"fmt"

	"github.com/go-trading/alor"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// buildOrder выбирает метод фабрики по комбинации тип×направление
func buildOrder(c *cli.Context, factory *alor.OrderFactory) (*alor.Order, error) {
	quantity := c.Int64("quantity")
	price := decimal.NewFromFloat(c.Float64("price"))
	triggerPrice := decimal.NewFromFloat(c.Float64("trigger-price"))
	buy := alor.Side(c.String("side")) == alor.SideBuy

	switch alor.OrderType(c.String("type")) {
	case alor.OrderTypeMarket:
		if buy {
			return factory.MarketBuy(quantity), nil
		}
		return factory.MarketSell(quantity), nil
	case alor.OrderTypeLimit:
		if buy {
			return factory.LimitBuy(quantity, price), nil
		}
		return factory.LimitSell(quantity, price), nil
	case alor.OrderTypeStop:
		if buy {
			return factory.StopBuy(quantity, triggerPrice), nil
		}
		return factory.StopSell(quantity, triggerPrice), nil
	case alor.OrderTypeStopLimit:
		if buy {
			return factory.StopLimitBuy(quantity, price, triggerPrice), nil
		}
		return factory.StopLimitSell(quantity, price, triggerPrice), nil
	case alor.OrderTypeTakeProfit:
		if buy {
			return factory.TakeProfitMarketBuy(quantity, triggerPrice), nil
		}
		return factory.TakeProfitMarketSell(quantity, triggerPrice), nil
	case alor.OrderTypeTakeProfitLimit:
		if buy {
			return factory.TakeProfitLimitBuy(quantity, price, triggerPrice), nil
		}
		return factory.TakeProfitLimitSell(quantity, price, triggerPrice), nil
	}
	return nil, fmt.Errorf("неизвестный тип заявки %q", c.String("type"))
}

func orderSend(c *cli.Context) error {
	client := newClient(c)

	instrument := alor.NewInstrument(c.StringSlice("ticker")[0], c.String("exchange"))
	user := alor.NewUser(c.String("account"), c.String("portfolio"))
	factory := alor.NewOrderFactory(client, user, instrument)

	order, err := buildOrder(c, factory)
	if err != nil {
		return err
	}

	ok, err := order.Send(c.Context)
	if err != nil {
		l.Fatal("не смог отправить заявку", zap.Error(err))
	}
	if !ok {
		l.Fatal("брокер отклонил заявку",
			zap.Stringer("order", order),
			zap.String("message", order.ResponseMessage()))
	}
	fmt.Printf("заявка принята: orderId=%d %s\n", order.OrderID(), order.ResponseMessage())

	return nil
}

func orderCancel(c *cli.Context) error {
	client := newClient(c)

	instrument := alor.NewInstrument(c.StringSlice("ticker")[0], c.String("exchange"))
	user := alor.NewUser(c.String("account"), c.String("portfolio"))
	order := alor.NewOrder(instrument, user, client, alor.OrderParams{
		Type:            alor.OrderType(c.String("type")),
		Side:            alor.Side(c.String("side")),
		TradeServerCode: c.String("server-code"),
	})
	order.SetOrderID(c.Int64("order-id"))

	ok, err := order.Delete(c.Context)
	if err != nil {
		l.Fatal("не смог снять заявку", zap.Error(err))
	}
	if !ok {
		l.Fatal("брокер не снял заявку", zap.String("message", order.ResponseMessage()))
	}
	fmt.Println(order.ResponseMessage())

	return nil
}
