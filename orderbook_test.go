package alor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdcoffey/big"
)

func TestGetOrderBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/md/v2/orderbooks/MOEX/SBER" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("depth"); got != "5" {
			t.Errorf("query depth = %q, want 5", got)
		}
		w.Write([]byte(`{
			"bids":[{"price":100.5,"volume":10},{"price":100.4,"volume":20}],
			"asks":[{"price":100.6,"volume":15}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	book := client.GetOrderBook(context.Background(), NewInstrument("SBER", ""), 5)

	if len(book.Bids) != 2 || len(book.Asks) != 1 {
		t.Fatalf("bids = %d, asks = %d, want 2 и 1", len(book.Bids), len(book.Asks))
	}
	if !book.Bids[0].Price.EQ(big.NewDecimal(100.5)) || book.Bids[0].Quantity != 10 {
		t.Errorf("Bids[0] = %+v", book.Bids[0])
	}
	if !book.Asks[0].Price.EQ(big.NewDecimal(100.6)) || book.Asks[0].Quantity != 15 {
		t.Errorf("Asks[0] = %+v", book.Asks[0])
	}
}

func TestGetOrderBookEmptyOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user", "", srv.URL, nil)
	book := client.GetOrderBook(context.Background(), NewInstrument("SBER", ""), 5)
	if len(book.Bids) != 0 || len(book.Asks) != 0 {
		t.Errorf("при ошибке ожидается пустой стакан, got %+v", book)
	}
}
