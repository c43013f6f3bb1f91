package alor

import (
	"context"
	"fmt"
	"net/url"
)

// Запросы информации о клиенте: портфели, заявки, позиции, сделки, риски.
// Всё — тонкая прослойка над SendRequest; не-200 молча превращается в пустой
// результат, диагностика уходит в debug-лог.

// GetPortfolios возвращает список серверов и портфелей пользователя.
// В поле tradeServerCode ответа — значение, которое надо использовать при отправке заявок.
func (c *Client) GetPortfolios(ctx context.Context) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/client/v1.0/users/%s/portfolios", c.username),
		nil, true)
}

// GetOrders возвращает информацию о всех заявках портфеля
func (c *Client) GetOrders(ctx context.Context, portfolio string, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/orders", exchange, portfolio),
		url.Values{"format": {format}}, true)
}

// GetOrder возвращает информацию о выбранной заявке
func (c *Client) GetOrder(ctx context.Context, orderID string, portfolio string, exchange string, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/orders/%s", exchange, portfolio, orderID),
		url.Values{"format": {format}}, true)
}

// GetStopOrders возвращает информацию о всех стоп-заявках портфеля
func (c *Client) GetStopOrders(ctx context.Context, portfolio string, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/stoporders", exchange, portfolio),
		url.Values{"format": {format}}, true)
}

// GetStopOrder возвращает информацию о выбранной стоп-заявке
func (c *Client) GetStopOrder(ctx context.Context, stopOrderID string, portfolio string, exchange string, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/stoporders/%s", exchange, portfolio, stopOrderID),
		url.Values{"format": {format}}, true)
}

// GetSummary возвращает сводную информацию по портфелю
func (c *Client) GetSummary(ctx context.Context, portfolio string, exchange string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/summary", exchange, portfolio),
		nil, true)
}

// GetPositions возвращает информацию о позициях
func (c *Client) GetPositions(ctx context.Context, portfolio string, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/positions", exchange, portfolio),
		url.Values{"format": {format}}, true)
}

// GetPositionsByTicker возвращает информацию о позиции по конкретному инструменту
func (c *Client) GetPositionsByTicker(ctx context.Context, ticker string, portfolio string, exchange string, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/positions/%s", exchange, portfolio, ticker),
		url.Values{"format": {format}}, true)
}

// GetTrades возвращает информацию о сделках
func (c *Client) GetTrades(ctx context.Context, portfolio string, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/trades", exchange, portfolio),
		url.Values{"format": {format}}, true)
}

// GetTradesByTicker возвращает информацию о сделках по конкретному тикеру
func (c *Client) GetTradesByTicker(ctx context.Context, ticker string, portfolio string, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/%s/trades", exchange, portfolio, ticker),
		url.Values{"format": {format}}, true)
}

// GetFortsRisk возвращает информацию о рисках на срочном рынке
func (c *Client) GetFortsRisk(ctx context.Context, portfolio string, exchange string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/fortsrisk", exchange, portfolio),
		nil, true)
}

// GetRisk возвращает информацию о рисках
func (c *Client) GetRisk(ctx context.Context, portfolio string, exchange string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/clients/%s/%s/risk", exchange, portfolio),
		nil, true)
}
