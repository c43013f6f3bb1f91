package main

// описание аргументов командной строки

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	exchangeFlag = &cli.StringFlag{
		Name:    "exchange",
		Value:   "MOEX",
		Usage:   "Биржа: MOEX или SPBX",
		EnvVars: []string{"ALOR_EXCHANGE"},
	}
	tickersFlag = &cli.StringSliceFlag{
		Name:     "ticker",
		Usage:    "Тикер инструмента",
		Required: true,
		EnvVars:  []string{"ALOR_TICKER"},
	}
	portfolioFlag = &cli.StringFlag{
		Name:     "portfolio",
		Usage:    "Идентификатор портфеля",
		Required: true,
		EnvVars:  []string{"ALOR_PORTFOLIO"},
	}
	accountFlag = &cli.StringFlag{
		Name:    "account",
		Usage:   "Номер счёта",
		EnvVars: []string{"ALOR_ACCOUNT"},
	}
	quantityFlag = &cli.Int64Flag{
		Name:     "quantity",
		Usage:    "Количество лотов",
		Required: true,
	}
	priceFlag = &cli.Float64Flag{
		Name:  "price",
		Usage: "Цена заявки (для лимитных типов)",
	}
	triggerPriceFlag = &cli.Float64Flag{
		Name:  "trigger-price",
		Usage: "Цена активации (для стоп-семейства)",
	}
	orderTypeFlag = &cli.StringFlag{
		Name:     "type",
		Usage:    "Тип заявки: market, limit, stop, stoplimit, takeProfit, takeProfitLimit",
		Required: true,
	}
	sideFlag = &cli.StringFlag{
		Name:     "side",
		Usage:    "Направление: buy или sell",
		Required: true,
	}
	orderIDFlag = &cli.Int64Flag{
		Name:     "order-id",
		Usage:    "Идентификатор заявки, присвоенный сервером",
		Required: true,
	}
	serverCodeFlag = &cli.StringFlag{
		Name:  "server-code",
		Value: "TRADE",
		Usage: "Код торгового сервера: TRADE или FUT1",
	}
	queryFlag = &cli.StringFlag{
		Name:     "query",
		Usage:    "Тикер или часть названия инструмента",
		Required: true,
	}
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Value: 10,
		Usage: "Максимальное количество строк в ответе",
	}
	sectorFlag = &cli.StringFlag{
		Name:  "sector",
		Usage: "Сектор: FORTS, FOND или CURR",
	}
	dataFlag = &cli.PathFlag{
		Name:    "data",
		Value:   "./data/",
		Usage:   "Каталог в котором хранятся скаченные свечи",
		EnvVars: []string{"DATA"},
	}
	candlesPeriodFlag = &cli.DurationFlag{
		Name:    "candles-period",
		Value:   time.Minute,
		Usage:   "Размер свечи",
		EnvVars: []string{"ALOR_CANDLES_PERIOD"},
	}
	fromFlag = &cli.TimestampFlag{
		Name:    "from",
		Value:   cli.NewTimestamp(time.Now().AddDate(0, 0, -7)),
		Usage:   "Время c которого нужно скачивать историю",
		Layout:  "2006-01-02T15:04",
		EnvVars: []string{"ALOR_FROM"},
	}
	toFlag = &cli.TimestampFlag{
		Name:    "to",
		Value:   cli.NewTimestamp(time.Now()),
		Usage:   "Время по которое нужно скачивать историю",
		Layout:  "2006-01-02T15:04",
		EnvVars: []string{"ALOR_TO"},
	}

	connectionFlags = []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Value:   "https://api.alor.ru",
			Usage:   "Базовый URI Alor OpenAPI",
			Aliases: []string{"a"},
			EnvVars: []string{"ALOR_API"},
		},
		&cli.StringFlag{
			Name:    "refresh-api",
			Value:   "https://oauth.alor.ru",
			Usage:   "Базовый URI сервера авторизации (обмен refresh-токена)",
			EnvVars: []string{"ALOR_REFRESH_API"},
		},
		&cli.StringFlag{
			Name:     "username",
			Usage:    "Логин в Alor",
			Required: true,
			Aliases:  []string{"u"},
			EnvVars:  []string{"ALOR_USERNAME"},
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "Пароль в Alor",
			EnvVars: []string{"ALOR_PASSWORD"},
		},
		&cli.PathFlag{
			Name:    "tokens",
			Value:   "tokens.json",
			Usage:   "Файл c сохранённой парой токенов",
			EnvVars: []string{"ALOR_TOKENS"},
		},
	}
	globalFlags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Value:   false,
			Usage:   "Устанавливает уровень логирования в debug уровень",
			Aliases: []string{"d"},
			EnvVars: []string{"ALOR_DEBUG"},
		},
		&cli.StringFlag{
			Name:    "monitoring",
			Usage:   "Адрес, по которому включить метрики prometeus. Например :8080",
			Aliases: []string{"m"},
			EnvVars: []string{"ALOR_MONITORING"},
		},
	}
)
