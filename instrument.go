package alor

// торговый инструмент: тикер + биржа
type Instrument struct {
	ticker   string
	exchange string
}

// wire-представление инструмента в теле заявки
type instrumentWire struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

func NewInstrument(ticker string, exchange string) Instrument {
	if exchange == "" {
		exchange = ExchangeDefault
	}
	return Instrument{ticker: ticker, exchange: exchange}
}

func (i Instrument) Ticker() string   { return i.ticker }
func (i Instrument) Exchange() string { return i.exchange }

// каноническая строковая форма, например "MOEX:SBER"
func (i Instrument) String() string {
	return i.exchange + ":" + i.ticker
}

func (i Instrument) asWire() instrumentWire {
	return instrumentWire{
		Symbol:   i.ticker,
		Exchange: i.exchange,
	}
}
