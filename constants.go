package alor

// Константы протокола Alor OpenAPI

const ContentTypeJSON = "application/json"

// формат возвращаемых данных
const (
	FormatTV     = "TV"
	FormatBOT    = "BOT"
	FormatAPP    = "APP"
	FormatSimple = "Simple"
)

// биржа
const (
	ExchangeMOEX    = "MOEX"
	ExchangeSPBX    = "SPBX"
	ExchangeDefault = ExchangeMOEX
)

// таймфрейм свечи, в секундах
const (
	TF15Sec = 15
	TF1Min  = 60
	TF5Min  = 300
	TF15Min = 900
	TF1Hour = 3600
	TF1Day  = 86400
)

// сектор - имя торговой системы
const (
	SectorFORTS    = "FORTS"
	SectorFOND     = "FOND"
	SectorCurrency = "CURR"
)

// код торгового сервера
const (
	ServerCodeTrade = "TRADE"
	ServerCodeFut1  = "FUT1"
)

// направление трейда
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// статусы заявки
const (
	StatusWorking  = "working"  // на исполнении
	StatusFilled   = "filled"   // исполнена
	StatusCanceled = "canceled" // отменена
	StatusRejected = "rejected" // отклонена
)

var (
	ActiveStatuses = []string{StatusWorking}
	ClosedStatuses = []string{StatusFilled, StatusCanceled, StatusRejected}
)

// не рабочие дни: воскресенье и суббота
var WeekendDays = []int{0, 6}

// время дневной торговой сессии
const (
	TradingSessionDayFrom = "10:00:00"
	TradingSessionDayTo   = "18:59:59"
)
