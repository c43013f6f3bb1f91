package alor

import (
	"github.com/shopspring/decimal"
)

// OrderFactory связывает инструмент, клиента API и идентификаторы счёта
// и создаёт готовые к отправке заявки: по методу на комбинацию тип×направление.
// Чистый строитель — ни сетевых вызовов, ни собственного состояния.
type OrderFactory struct {
	instrument Instrument
	user       User
	client     *Client
}

func NewOrderFactory(client *Client, user User, instrument Instrument) *OrderFactory {
	return &OrderFactory{
		instrument: instrument,
		user:       user,
		client:     client,
	}
}

func (f *OrderFactory) Instrument() Instrument { return f.instrument }
func (f *OrderFactory) User() User             { return f.user }

func (f *OrderFactory) newOrder(p OrderParams) *Order {
	return NewOrder(f.instrument, f.user, f.client, p)
}

// OrderInstance создаёт заявку без типа и параметров, под ручную настройку через NewOrder
func (f *OrderFactory) OrderInstance(tradeServerCode string) *Order {
	return f.newOrder(OrderParams{TradeServerCode: tradeServerCode})
}

// лимитная заявка на покупку
func (f *OrderFactory) LimitBuy(quantity int64, price decimal.Decimal) *Order {
	return f.newOrder(OrderParams{Type: OrderTypeLimit, Side: SideBuy, Quantity: quantity, Price: price})
}

// лимитная заявка на продажу
func (f *OrderFactory) LimitSell(quantity int64, price decimal.Decimal) *Order {
	return f.newOrder(OrderParams{Type: OrderTypeLimit, Side: SideSell, Quantity: quantity, Price: price})
}

// рыночная заявка на покупку
func (f *OrderFactory) MarketBuy(quantity int64) *Order {
	return f.newOrder(OrderParams{Type: OrderTypeMarket, Side: SideBuy, Quantity: quantity})
}

// рыночная заявка на продажу
func (f *OrderFactory) MarketSell(quantity int64) *Order {
	return f.newOrder(OrderParams{Type: OrderTypeMarket, Side: SideSell, Quantity: quantity})
}

// стоп-заявка по рынку на покупку
func (f *OrderFactory) StopBuy(quantity int64, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeStop, Side: SideBuy, Quantity: quantity,
		TriggerPrice: triggerPrice, TradeServerCode: ServerCodeFut1,
	})
}

// стоп-заявка по рынку на продажу
func (f *OrderFactory) StopSell(quantity int64, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeStop, Side: SideSell, Quantity: quantity,
		TriggerPrice: triggerPrice, TradeServerCode: ServerCodeFut1,
	})
}

// лимитная стоп-заявка на покупку
func (f *OrderFactory) StopLimitBuy(quantity int64, price decimal.Decimal, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeStopLimit, Side: SideBuy, Quantity: quantity,
		Price: price, TriggerPrice: triggerPrice,
	})
}

// лимитная стоп-заявка на продажу
func (f *OrderFactory) StopLimitSell(quantity int64, price decimal.Decimal, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeStopLimit, Side: SideSell, Quantity: quantity,
		Price: price, TriggerPrice: triggerPrice,
	})
}

// тейк-профит по рынку на покупку
func (f *OrderFactory) TakeProfitMarketBuy(quantity int64, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeTakeProfit, Side: SideBuy, Quantity: quantity,
		TriggerPrice: triggerPrice, TradeServerCode: ServerCodeFut1,
	})
}

// тейк-профит по рынку на продажу
func (f *OrderFactory) TakeProfitMarketSell(quantity int64, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeTakeProfit, Side: SideSell, Quantity: quantity,
		TriggerPrice: triggerPrice, TradeServerCode: ServerCodeFut1,
	})
}

// лимитный тейк-профит на покупку
func (f *OrderFactory) TakeProfitLimitBuy(quantity int64, price decimal.Decimal, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeTakeProfitLimit, Side: SideBuy, Quantity: quantity,
		Price: price, TriggerPrice: triggerPrice,
	})
}

// лимитный тейк-профит на продажу
func (f *OrderFactory) TakeProfitLimitSell(quantity int64, price decimal.Decimal, triggerPrice decimal.Decimal) *Order {
	return f.newOrder(OrderParams{
		Type: OrderTypeTakeProfitLimit, Side: SideSell, Quantity: quantity,
		Price: price, TriggerPrice: triggerPrice,
	})
}
