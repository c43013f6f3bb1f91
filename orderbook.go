package alor

import (
	"context"

	"github.com/sdcoffey/big"
)

// заявка в стакане
type OrderBookOrder struct {
	Price    big.Decimal // цена за 1 инструмент
	Quantity int64       // количество в лотах
}

// Информация о стакане.
type OrderBook struct {
	Instrument Instrument
	Depth      int
	Bids       []OrderBookOrder // пары значений на покупку
	Asks       []OrderBookOrder // пары значений на продажу
}

func newOrderBookOrders(raw any) []OrderBookOrder {
	items, _ := raw.([]any)
	result := make([]OrderBookOrder, 0, len(items))
	for _, item := range items {
		order, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, OrderBookOrder{
			Price:    big.NewDecimal(number(order["price"])),
			Quantity: int64(number(order["volume"])),
		})
	}
	return result
}

// GetOrderBook возвращает типизированный стакан инструмента
func (c *Client) GetOrderBook(ctx context.Context, instrument Instrument, depth int) *OrderBook {
	raw := c.GetOrderbooks(ctx, instrument.Ticker(), instrument.Exchange(), depth, FormatSimple)
	return &OrderBook{
		Instrument: instrument,
		Depth:      depth,
		Bids:       newOrderBookOrders(raw["bids"]),
		Asks:       newOrderBookOrders(raw["asks"]),
	}
}
