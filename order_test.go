package alor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testFactory(client *Client) *OrderFactory {
	return NewOrderFactory(client, NewUser("A1", "P1"), NewInstrument("SBER", ExchangeMOEX))
}

func TestOrderAsJSON(t *testing.T) {
	factory := testFactory(nil)

	tests := []struct {
		name  string
		order *Order
		want  string
	}{
		{
			"limitBuy",
			factory.LimitBuy(1, decimal.NewFromFloat(100.5)),
			`{"quantity":1,"side":"buy","type":"limit","price":100.5,"instrument":{"symbol":"SBER","exchange":"MOEX"},"user":{"account":"A1","portfolio":"P1"}}`,
		},
		{
			"marketSell",
			factory.MarketSell(2),
			`{"quantity":2,"side":"sell","type":"market","instrument":{"symbol":"SBER","exchange":"MOEX"},"user":{"account":"A1","portfolio":"P1"}}`,
		},
		{
			"stopSell",
			factory.StopSell(3, decimal.NewFromInt(200)),
			`{"quantity":3,"side":"sell","type":"stop","triggerPrice":200,"instrument":{"symbol":"SBER","exchange":"MOEX"},"user":{"account":"A1","portfolio":"P1"},"orderEndUnixTime":0}`,
		},
		{
			// takeProfit не передаёт собственный type
			"takeProfitMarketBuy",
			factory.TakeProfitMarketBuy(4, decimal.NewFromFloat(150.25)),
			`{"quantity":4,"side":"buy","triggerPrice":150.25,"instrument":{"symbol":"SBER","exchange":"MOEX"},"user":{"account":"A1","portfolio":"P1"},"orderEndUnixTime":0}`,
		},
		{
			"takeProfitLimitBuy",
			factory.TakeProfitLimitBuy(5, decimal.NewFromInt(151), decimal.NewFromInt(150)),
			`{"quantity":5,"side":"buy","type":"takeProfitLimit","triggerPrice":150,"price":151,"instrument":{"symbol":"SBER","exchange":"MOEX"},"user":{"account":"A1","portfolio":"P1"},"orderEndUnixTime":0}`,
		},
	}
	for _, tt := range tests {
		got, err := tt.order.AsJSON()
		if err != nil {
			t.Errorf("%s: AsJSON(): %v", tt.name, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s: AsJSON() =\n%s\nwant\n%s", tt.name, got, tt.want)
		}
	}
}

var requestIDRe = regexp.MustCompile(`^P1;[1-9]\d{3}-[0-9a-f]{5}$`)

func TestNewRequestID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewRequestID("P1")
		if !requestIDRe.MatchString(id) {
			t.Fatalf("NewRequestID() = %q, не соответствует формату %s", id, requestIDRe)
		}
		if seen[id] {
			t.Fatalf("NewRequestID() повторился: %q", id)
		}
		seen[id] = true
	}
}

func TestParseMessageEndTime(t *testing.T) {
	got, ok := parseMessageEndTime("заявка принята {01.02.24 18:00:00}")
	if !ok {
		t.Fatal("parseMessageEndTime: срок не распознан")
	}
	want := time.Date(2024, 2, 1, 18, 0, 0, 0, time.Local).Unix()
	if got != want {
		t.Errorf("parseMessageEndTime() = %d, want %d", got, want)
	}

	if _, ok := parseMessageEndTime("без срока действия"); ok {
		t.Error("parseMessageEndTime: распознал срок там, где его нет")
	}
}

func TestOrderSend(t *testing.T) {
	var gotPath, gotReqID, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReqID = r.Header.Get("X-ALOR-REQID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"message":"заявка принята {01.02.24 18:00:00}","orderNumber":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).StopSell(1, decimal.NewFromInt(200))

	ok, err := order.Send(context.Background())
	if err != nil {
		t.Fatalf("Send(): %v", err)
	}
	if !ok {
		t.Fatalf("Send() = false, message: %s", order.ResponseMessage())
	}
	if want := "/warptrans/FUT1/v2/client/orders/actions/stop"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotReqID != order.RequestID() {
		t.Errorf("заголовок X-ALOR-REQID = %q, want %q", gotReqID, order.RequestID())
	}
	if gotContentType != ContentTypeJSON {
		t.Errorf("Content-Type = %q, want %q", gotContentType, ContentTypeJSON)
	}
	if order.OrderID() != 42 {
		t.Errorf("OrderID() = %d, want 42", order.OrderID())
	}
	wantEnd := time.Date(2024, 2, 1, 18, 0, 0, 0, time.Local).Unix()
	if order.OrderEndUnixTime() != wantEnd {
		t.Errorf("OrderEndUnixTime() = %d, want %d", order.OrderEndUnixTime(), wantEnd)
	}
}

func TestOrderSendLimitUsesCommandAPI(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"orderNumber":"7"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).LimitBuy(1, decimal.NewFromInt(100))

	ok, err := order.Send(context.Background())
	if err != nil || !ok {
		t.Fatalf("Send() = %v, %v", ok, err)
	}
	if want := "/commandapi/warptrans/TRADE/v2/client/orders/actions/limit"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	// orderNumber строкой тоже принимается
	if order.OrderID() != 7 {
		t.Errorf("OrderID() = %d, want 7", order.OrderID())
	}
}

func TestOrderSendRejected(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{"unauthorized", http.StatusUnauthorized, `whatever`, "401 Unauthorized"},
		{"badRequestWithMessage", http.StatusBadRequest, `{"message":"цена вне лимитов"}`, "цена вне лимитов"},
		{"badRequestRaw", http.StatusBadRequest, `нет такого портфеля`, "нет такого портфеля"},
		{"forbiddenKeyValues", http.StatusForbidden, `{"code":"NO_ACCESS","message":"forbidden"}`, "code : NO_ACCESS\nmessage : forbidden"},
		{"forbiddenEmptyBody", http.StatusForbidden, ``, "Forbidden"},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.statusCode)
			w.Write([]byte(tt.body))
		}))
		client := NewClient(srv.URL, "user", "", srv.URL, nil)
		order := testFactory(client).LimitBuy(1, decimal.NewFromInt(100))

		ok, err := order.Send(context.Background())
		if err != nil {
			t.Errorf("%s: Send(): %v", tt.name, err)
		}
		if ok {
			t.Errorf("%s: Send() = true, want false", tt.name)
		}
		if order.ResponseMessage() != tt.wantMessage {
			t.Errorf("%s: ResponseMessage() = %q, want %q", tt.name, order.ResponseMessage(), tt.wantMessage)
		}
		srv.Close()
	}
}

func TestOrderSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже закрыт, запрос не пройдёт

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).MarketBuy(1)

	ok, err := order.Send(context.Background())
	if err != nil {
		t.Fatalf("Send(): %v", err)
	}
	if ok {
		t.Error("Send() = true при транспортной ошибке")
	}
	if order.ResponseMessage() == "" {
		t.Error("ResponseMessage() пуст при транспортной ошибке")
	}
}

func TestOrderChangeRequiresOrderID(t *testing.T) {
	order := testFactory(nil).LimitBuy(1, decimal.NewFromInt(100))
	if _, err := order.Change(context.Background()); err != ErrOrderIDNotSet {
		t.Errorf("Change() err = %v, want ErrOrderIDNotSet", err)
	}
	if _, err := order.Delete(context.Background()); err != ErrOrderIDNotSet {
		t.Errorf("Delete() err = %v, want ErrOrderIDNotSet", err)
	}
}

func TestOrderChangePath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"orderNumber":42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).LimitBuy(1, decimal.NewFromInt(101))
	order.SetOrderID(42)

	ok, err := order.Change(context.Background())
	if err != nil || !ok {
		t.Fatalf("Change() = %v, %v", ok, err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if want := "/commandapi/warptrans/TRADE/v2/client/orders/actions/limit/42"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
}

func TestOrderDeleteLimit(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`success`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).LimitBuy(1, decimal.NewFromInt(100))
	order.SetOrderID(42)

	ok, err := order.Delete(context.Background())
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v", ok, err)
	}
	if want := "/commandapi/warptrans/TRADE/v2/client/orders/42"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	wantQuery := map[string]string{
		"account":   "A1",
		"portfolio": "P1",
		"exchange":  "MOEX",
		"stop":      "false",
		"format":    FormatSimple,
	}
	for key, want := range wantQuery {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s = %v, want %q", key, got, want)
		}
	}
	if order.ResponseMessage() != "success" {
		t.Errorf("ResponseMessage() = %q, want %q", order.ResponseMessage(), "success")
	}
}

func TestOrderDeleteStop(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`success`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).StopSell(1, decimal.NewFromInt(200))
	order.SetOrderID(43)

	ok, err := order.Delete(context.Background())
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v", ok, err)
	}
	if want := "/warptrans/FUT1/v2/client/orders/43"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if got := gotQuery["stop"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("query stop = %v, want true", got)
	}
	if got := gotQuery["portfolio"]; len(got) != 1 || got[0] != "P1" {
		t.Errorf("query portfolio = %v, want P1", got)
	}
	if got := gotQuery["X-ALOR-REQID"]; len(got) != 1 || got[0] != order.RequestID() {
		t.Errorf("query X-ALOR-REQID = %v, want %q", got, order.RequestID())
	}
	if got := gotQuery["account"]; len(got) != 0 {
		t.Errorf("query account = %v, для стоп-заявки не передаётся", got)
	}
}

func TestOrderDeleteRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`заявка уже снята`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	order := testFactory(client).LimitBuy(1, decimal.NewFromInt(100))
	order.SetOrderID(42)

	ok, err := order.Delete(context.Background())
	if err != nil {
		t.Fatalf("Delete(): %v", err)
	}
	if ok {
		t.Error("Delete() = true, want false")
	}
	if order.ResponseMessage() != "заявка уже снята" {
		t.Errorf("ResponseMessage() = %q, want %q", order.ResponseMessage(), "заявка уже снята")
	}
}

func TestAsInt64(t *testing.T) {
	if got, ok := asInt64(float64(42)); !ok || got != 42 {
		t.Errorf("asInt64(float64) = %d, %v", got, ok)
	}
	if got, ok := asInt64("42"); !ok || got != 42 {
		t.Errorf("asInt64(string) = %d, %v", got, ok)
	}
	if _, ok := asInt64("abc"); ok {
		t.Error("asInt64(не число) должен возвращать false")
	}
	if _, ok := asInt64(nil); ok {
		t.Error("asInt64(nil) должен возвращать false")
	}
}
