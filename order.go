package alor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// параметры заявки, фиксируются при создании
type OrderParams struct {
	Type             OrderType
	Side             Side
	Quantity         int64
	Price            decimal.Decimal // для типов с признаком CarriesPrice
	TriggerPrice     decimal.Decimal // для типов с признаком CarriesTriggerPrice
	OrderEndUnixTime int64
	TradeServerCode  string // по умолчанию TRADE
}

// Order — торговая заявка. Создаётся неотправленной, Send присваивает requestID
// и, при успехе, orderID сервера. Change/Delete требуют уже присвоенного orderID.
// Повторное использование после удаления локально не запрещается.
type Order struct {
	client           *Client
	instrument       Instrument
	user             User
	orderType        OrderType
	tradeServerCode  string
	side             Side
	quantity         int64
	price            decimal.Decimal
	triggerPrice     decimal.Decimal
	orderEndUnixTime int64
	requestID        string
	orderID          int64
	responseMessage  string
}

// NewOrder собирает заявку с произвольным набором параметров.
// Для стандартных комбинаций тип×направление удобнее методы OrderFactory.
func NewOrder(instrument Instrument, user User, client *Client, p OrderParams) *Order {
	if p.TradeServerCode == "" {
		p.TradeServerCode = ServerCodeTrade
	}
	return &Order{
		client:           client,
		instrument:       instrument,
		user:             user,
		orderType:        p.Type,
		tradeServerCode:  p.TradeServerCode,
		side:             p.Side,
		quantity:         p.Quantity,
		price:            p.Price,
		triggerPrice:     p.TriggerPrice,
		orderEndUnixTime: p.OrderEndUnixTime,
	}
}

func (o *Order) Type() OrderType               { return o.orderType }
func (o *Order) Side() Side                    { return o.side }
func (o *Order) Quantity() int64               { return o.quantity }
func (o *Order) Price() decimal.Decimal        { return o.price }
func (o *Order) TriggerPrice() decimal.Decimal { return o.triggerPrice }
func (o *Order) OrderEndUnixTime() int64       { return o.orderEndUnixTime }
func (o *Order) Instrument() Instrument        { return o.instrument }
func (o *Order) User() User                    { return o.user }
func (o *Order) TradeServerCode() string       { return o.tradeServerCode }
func (o *Order) RequestID() string             { return o.requestID }
func (o *Order) OrderID() int64                { return o.orderID }

// ResponseMessage возвращает последний текст ошибки или сообщения брокера
func (o *Order) ResponseMessage() string { return o.responseMessage }

func (o *Order) SetOrderID(orderID int64) { o.orderID = orderID }

// shopspring/decimal по умолчанию сериализуется json-строкой,
// а брокер ждёт числа
type wireDecimal struct {
	decimal.Decimal
}

func (d wireDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// wire-представление заявки. Порядок полей в json повторяет порядок полей
// структуры и должен сохраняться: брокер обрабатывает тело позиционно.
type orderWire struct {
	Quantity         int64          `json:"quantity"`
	Side             Side           `json:"side"`
	Type             OrderType      `json:"type,omitempty"`
	TriggerPrice     *wireDecimal   `json:"triggerPrice,omitempty"`
	Price            *wireDecimal   `json:"price,omitempty"`
	Instrument       instrumentWire `json:"instrument"`
	User             userWire       `json:"user"`
	OrderEndUnixTime *int64         `json:"orderEndUnixTime,omitempty"`
}

func (o *Order) asWire() orderWire {
	w := orderWire{
		Quantity:   o.quantity,
		Side:       o.side,
		Instrument: o.instrument.asWire(),
		User:       o.user.asWire(),
	}
	// takeProfit — единственный тип, не передающий собственный type:
	// исторический контракт сервера, менять нельзя
	if o.orderType != OrderTypeTakeProfit {
		w.Type = o.orderType
	}
	traits := o.orderType.Traits()
	if traits.CarriesTriggerPrice {
		w.TriggerPrice = &wireDecimal{o.triggerPrice}
	}
	if traits.CarriesPrice {
		w.Price = &wireDecimal{o.price}
	}
	if traits.CarriesEndTime {
		endTime := o.orderEndUnixTime
		w.OrderEndUnixTime = &endTime
	}
	return w
}

// AsJSON возвращает тело заявки для отправки брокеру
func (o *Order) AsJSON() ([]byte, error) {
	return json.Marshal(o.asWire())
}

var requestSeq uint64

// NewRequestID генерирует уникальный идентификатор запроса
// вида "портфель;1234-ab0f3"
func NewRequestID(portfolio string) string {
	seed := fmt.Sprintf("%d.%d", time.Now().UnixNano(), atomic.AddUint64(&requestSeq, 1))
	sum := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%s;%d-%s", portfolio, 1000+rand.Intn(9000), hex.EncodeToString(sum[:])[:5])
}

// в сообщениях об успешной постановке стоп-заявки сервер передаёт срок её
// действия в фигурных скобках, локальным временем в формате dd.mm.yy
var messageEndTimeRe = regexp.MustCompile(`\{(.*)\}`)

const messageEndTimeLayout = "02.01.06 15:04:05"

func parseMessageEndTime(message string) (int64, bool) {
	m := messageEndTimeRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	t, err := time.ParseInLocation(messageEndTimeLayout, m[1], time.Local)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}

// Send отправляет заявку. Возвращает false при отказе брокера или транспортной
// ошибке — подробности в ResponseMessage и OrderID, исключений для обычных
// отказов нет. Ошибка возвращается только при невозможности собрать запрос.
func (o *Order) Send(ctx context.Context) (bool, error) {
	o.requestID = NewRequestID(o.user.portfolio)
	path := fmt.Sprintf("%s/warptrans/%s/v2/client/orders/actions/%s",
		o.orderType.commandAPI(), o.tradeServerCode, o.orderType)
	return o.submit(ctx, path, http.MethodPost, "send")
}

// Change изменяет ранее отправленную заявку. Без orderID — ErrOrderIDNotSet.
func (o *Order) Change(ctx context.Context) (bool, error) {
	if o.orderID == 0 {
		return false, ErrOrderIDNotSet
	}
	o.requestID = NewRequestID(o.user.portfolio)
	path := fmt.Sprintf("%s/warptrans/%s/v2/client/orders/actions/%s/%d",
		o.orderType.commandAPI(), o.tradeServerCode, o.orderType, o.orderID)
	return o.submit(ctx, path, http.MethodPut, "change")
}

func (o *Order) submit(ctx context.Context, path string, method string, action string) (bool, error) {
	o.responseMessage = ""
	body, err := o.AsJSON()
	if err != nil {
		return false, err
	}
	headers := http.Header{}
	headers.Set("Content-Type", ContentTypeJSON)
	headers.Set("X-ALOR-REQID", o.requestID)

	if err := o.client.SendRequest(ctx, path, &RequestOptions{Headers: headers, Body: body}, true, method); err != nil {
		o.responseMessage = err.Error()
		ordersMetric.WithLabelValues(string(o.orderType), string(o.side), action, "transport_error").Inc()
		return false, nil
	}

	ok := o.interpretResponse()
	result := "rejected"
	if ok {
		result = "ok"
	}
	ordersMetric.WithLabelValues(string(o.orderType), string(o.side), action, result).Inc()
	return ok, nil
}

// interpretResponse разбирает последний ответ на отправку/изменение заявки
func (o *Order) interpretResponse() bool {
	client := o.client
	switch {
	case client.IsResponseStatusCode(http.StatusOK):
		result, _ := client.ResponseAsArray()
		if orderNumber, ok := asInt64(result["orderNumber"]); ok && orderNumber != 0 {
			o.orderID = orderNumber
		}
		if message, _ := result["message"].(string); message != "" {
			o.responseMessage = message
			if endTime, ok := parseMessageEndTime(message); ok {
				o.orderEndUnixTime = endTime
			}
		}
		return true

	case client.IsResponseStatusCode(http.StatusUnauthorized):
		// токен здесь не обновляем, только фиксируем статусную строку
		o.responseMessage = client.lastResponse.status
		return false

	case client.IsResponseStatusCode(http.StatusBadRequest):
		result, _ := client.ResponseAsArray()
		if message, _ := result["message"].(string); message != "" {
			o.responseMessage = message
		} else {
			o.responseMessage, _ = client.ResponseAsString()
		}
		return false

	case client.lastResponse.statusCode >= 400 && client.lastResponse.statusCode < 500:
		if respArr := DecodeBody(client.lastResponse.body); len(respArr) > 0 {
			o.responseMessage = formatKeyValues(respArr)
		} else {
			o.responseMessage = http.StatusText(client.lastResponse.statusCode)
		}
		return false

	default:
		// известный пробел: прочие статусы остаются без диагностики,
		// вызывающий смотрит состояние сам
		return false
	}
}

// Delete снимает заявку. Рыночные и лимитные снимаются через commandapi,
// стоп-семейство — через основной маршрут с параметром stop=true.
func (o *Order) Delete(ctx context.Context) (bool, error) {
	if o.orderID == 0 {
		return false, ErrOrderIDNotSet
	}
	o.requestID = NewRequestID(o.user.portfolio)
	o.responseMessage = ""

	var prefix string
	query := url.Values{}
	if slices.Contains([]OrderType{OrderTypeMarket, OrderTypeLimit}, o.orderType) {
		prefix = commandAPIPrefix
		query.Set("account", o.user.account)
		query.Set("portfolio", o.user.portfolio)
		query.Set("exchange", o.instrument.exchange)
		query.Set("stop", "false")
		query.Set("format", FormatSimple)
	} else {
		query.Set("portfolio", o.user.portfolio)
		query.Set("stop", "true")
		query.Set("X-ALOR-REQID", o.requestID)
	}
	path := fmt.Sprintf("%s/warptrans/%s/v2/client/orders/%d", prefix, o.tradeServerCode, o.orderID)

	if err := o.client.SendRequest(ctx, path, &RequestOptions{Query: query}, true, http.MethodDelete); err != nil {
		o.responseMessage = err.Error()
		ordersMetric.WithLabelValues(string(o.orderType), string(o.side), "delete", "transport_error").Inc()
		return false, nil
	}

	client := o.client
	ok := false
	switch {
	case client.IsResponseStatusCode(http.StatusOK):
		o.responseMessage, _ = client.ResponseAsString()
		ok = true
	case client.IsResponseStatusCode(http.StatusBadRequest):
		o.responseMessage, _ = client.ResponseAsString()
	}
	result := "rejected"
	if ok {
		result = "ok"
	}
	ordersMetric.WithLabelValues(string(o.orderType), string(o.side), "delete", result).Inc()
	return ok, nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{requestId=%s orderId=%d type=%s side=%s quantity=%d price=%s triggerPrice=%s instrument=%s orderEndUnixTime=%d}",
		o.requestID, o.orderID, o.orderType, o.side, o.quantity, o.price, o.triggerPrice, o.instrument, o.orderEndUnixTime)
}

// orderNumber в ответах встречается и числом, и строкой
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// тело ошибки в строки вида "ключ : значение", по строке на поле
func formatKeyValues(respArr map[string]any) string {
	keys := make([]string, 0, len(respArr))
	for key := range respArr {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s : %v", key, respArr[key]))
	}
	return strings.Join(lines, "\n")
}
