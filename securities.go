package alor

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Запросы рыночной информации: инструменты, котировки, стаканы, история.

// параметры поиска инструментов
type SecuritiesQuery struct {
	Query    string // тикер или часть названия
	Limit    int
	Sector   string // FORTS, FOND, CURR
	CFICode  string
	Exchange string
	Format   string
}

// GetSecurities возвращает информацию о торговых инструментах по запросу
func (c *Client) GetSecurities(ctx context.Context, q SecuritiesQuery) []map[string]any {
	if q.Limit == 0 {
		q.Limit = 3
	}
	if q.Exchange == "" {
		q.Exchange = ExchangeDefault
	}
	if q.Format == "" {
		q.Format = FormatSimple
	}
	query := url.Values{
		"query":    {q.Query},
		"limit":    {strconv.Itoa(q.Limit)},
		"exchange": {q.Exchange},
		"format":   {q.Format},
	}
	if q.Sector != "" {
		query.Set("sector", q.Sector)
	}
	if q.CFICode != "" {
		query.Set("cficode", q.CFICode)
	}
	return c.getList(ctx, "/md/v2/securities", query, true)
}

// GetSecuritiesByExchange возвращает информацию об инструментах на выбранной бирже
func (c *Client) GetSecuritiesByExchange(ctx context.Context, exchange string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/securities/%s", exchange),
		nil, true)
}

// GetSecuritiesByTicker возвращает информацию о выбранном инструменте на бирже
func (c *Client) GetSecuritiesByTicker(ctx context.Context, ticker string, exchange string, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/securities/%s/%s", exchange, ticker),
		url.Values{"format": {format}}, true)
}

// GetQuotes возвращает котировки для выбранных инструментов
func (c *Client) GetQuotes(ctx context.Context, instruments []Instrument, format string) []map[string]any {
	symbols := make([]string, 0, len(instruments))
	for _, i := range instruments {
		symbols = append(symbols, i.String())
	}
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/securities/%s/quotes", strings.Join(symbols, ",")),
		url.Values{"format": {format}}, true)
}

// GetOrderbooks возвращает биржевой стакан
func (c *Client) GetOrderbooks(ctx context.Context, ticker string, exchange string, depth int, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/orderbooks/%s/%s", exchange, ticker),
		url.Values{
			"depth":  {strconv.Itoa(depth)},
			"format": {format},
		}, true)
}

// GetAllTrades возвращает ленту сделок по инструменту за сегодняшний день
func (c *Client) GetAllTrades(ctx context.Context, ticker string, timeFrom int64, timeTo int64, exchange string, format string) []map[string]any {
	return c.getList(ctx,
		fmt.Sprintf("/md/v2/securities/%s/%s/alltrades", exchange, ticker),
		url.Values{
			"format": {format},
			"from":   {strconv.FormatInt(timeFrom, 10)},
			"to":     {strconv.FormatInt(timeTo, 10)},
		}, true)
}

// GetActualFuturesQuote возвращает котировку по ближайшему фьючерсу (по коду, без даты)
func (c *Client) GetActualFuturesQuote(ctx context.Context, ticker string, exchange string, format string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/v2/securities/%s/%s/actualFuturesQuote", exchange, ticker),
		url.Values{"format": {format}}, true)
}

// GetHistory возвращает историю торгов по инструменту.
// Маршрут публичный, bearer-токен не передаётся.
func (c *Client) GetHistory(ctx context.Context, ticker string, timeFrom int64, timeTo int64, exchange string, tf int, format string) map[string]any {
	return c.getObject(ctx, "/md/v2/history",
		url.Values{
			"symbol":   {ticker},
			"exchange": {exchange},
			"tf":       {strconv.Itoa(tf)},
			"from":     {strconv.FormatInt(timeFrom, 10)},
			"to":       {strconv.FormatInt(timeTo, 10)},
			"format":   {format},
		}, false)
}

// GetInfo возвращает информацию о лоте инструмента.
//
// Deprecated: устаревший маршрут /md/securities, используйте GetSecuritiesByTicker.
func (c *Client) GetInfo(ctx context.Context, ticker string, exchange string) map[string]any {
	return c.getObject(ctx,
		fmt.Sprintf("/md/securities/%s/%s", exchange, ticker),
		nil, true)
}
