package alor

// тип заявки
type OrderType string

const (
	OrderTypeMarket          OrderType = "market"
	OrderTypeLimit           OrderType = "limit"
	OrderTypeStop            OrderType = "stop"            // стоп по рынку
	OrderTypeStopLimit       OrderType = "stoplimit"       // лимитный стоп
	OrderTypeStopLoss        OrderType = "stopLoss"        // по рынку, синоним stop
	OrderTypeStopLossLimit   OrderType = "stopLossLimit"   // лимитный стоп, синоним stoplimit
	OrderTypeTakeProfit      OrderType = "takeProfit"      // тейк-профит по рынку
	OrderTypeTakeProfitLimit OrderType = "takeProfitLimit" // лимитный тейк-профит
)

// orderTypeTraits описывает, какие поля и какой маршрут использует каждый тип заявки.
// Схема брокера меняется по независимым осям, поэтому вместо switch на каждый тип —
// одна таблица с четырьмя признаками.
type orderTypeTraits struct {
	UsesCommandAPI      bool // маршрут через префикс /commandapi
	CarriesTriggerPrice bool // в теле присутствует triggerPrice
	CarriesPrice        bool // в теле присутствует price
	CarriesEndTime      bool // в теле присутствует orderEndUnixTime
}

var orderTypeTable = map[OrderType]orderTypeTraits{
	OrderTypeMarket:          {UsesCommandAPI: true},
	OrderTypeLimit:           {UsesCommandAPI: true, CarriesPrice: true},
	OrderTypeStop:            {CarriesTriggerPrice: true, CarriesEndTime: true},
	OrderTypeStopLimit:       {CarriesTriggerPrice: true, CarriesPrice: true},
	OrderTypeStopLoss:        {CarriesTriggerPrice: true},
	OrderTypeStopLossLimit:   {CarriesTriggerPrice: true, CarriesEndTime: true},
	OrderTypeTakeProfit:      {CarriesTriggerPrice: true, CarriesEndTime: true},
	OrderTypeTakeProfitLimit: {CarriesTriggerPrice: true, CarriesPrice: true, CarriesEndTime: true},
}

// Traits возвращает признаки типа заявки по таблице
func (t OrderType) Traits() orderTypeTraits {
	return orderTypeTable[t]
}

// префикс commandapi для типов market и limit
const commandAPIPrefix = "/commandapi"

func (t OrderType) commandAPI() string {
	if t.Traits().UsesCommandAPI {
		return commandAPIPrefix
	}
	return ""
}
