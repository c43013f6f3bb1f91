package main

// В файле описаны все команды, доступные в командной строке

import (
	"github.com/go-trading/alor"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var сommands = []*cli.Command{
	{
		Name:   "time",
		Usage:  "Запросить текущее время биржи",
		Action: serverTime,
		Flags:  connectionFlags,
	}, {
		Name:   "portfolios",
		Usage:  "Вывести список серверов и портфелей пользователя",
		Action: portfolios,
		Flags:  connectionFlags,
	}, {
		Name:   "securities",
		Usage:  "Найти инструменты и вывести их коды",
		Action: securities,
		Flags:  append(connectionFlags, queryFlag, limitFlag, sectorFlag, exchangeFlag),
	}, {
		Name:   "quotes",
		Usage:  "Запросить котировки по выбранным инструментам",
		Action: quotes,
		Flags:  append(connectionFlags, tickersFlag, exchangeFlag),
	}, {
		Name:   "load",
		Usage:  "Загрузка исторических свечей (Скачать данные в csv)",
		Action: load,
		Flags:  append(connectionFlags, dataFlag, fromFlag, toFlag, tickersFlag, exchangeFlag, candlesPeriodFlag),
	}, {
		Name:  "order",
		Usage: "Группа команд для работы с заявками",
		Subcommands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "Выставить заявку выбранного типа",
				Action: orderSend,
				Flags: append(connectionFlags, tickersFlag, exchangeFlag, portfolioFlag, accountFlag,
					orderTypeFlag, sideFlag, quantityFlag, priceFlag, triggerPriceFlag),
			},
			{
				Name:   "cancel",
				Usage:  "Снять ранее выставленную заявку",
				Action: orderCancel,
				Flags: append(connectionFlags, tickersFlag, exchangeFlag, portfolioFlag, accountFlag,
					orderTypeFlag, sideFlag, orderIDFlag, serverCodeFlag),
			},
		},
	},
}

// newClient создаёт клиента и проходит авторизацию. Ошибка обновления токена фатальна.
func newClient(c *cli.Context) *alor.Client {
	client := alor.NewClient(
		c.String("api"),
		c.String("username"),
		c.String("password"),
		c.String("refresh-api"),
		alor.NewFileTokenStorage(c.Path("tokens")),
	)
	if err := client.Open(c.Context); err != nil {
		l.Fatal("не смог авторизоваться", zap.Error(err))
	}
	if !client.HasJWT() {
		l.Fatal("нет access-токена: положите пару токенов в файл из --tokens")
	}
	return client
}
