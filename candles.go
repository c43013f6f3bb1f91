package alor

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Работа с историческими свечами: выгрузка из /md/v2/history в techan.TimeSeries
// и сохранение/загрузка в csv-файлы.

// Candles — свечи одного инструмента с фиксированным таймфреймом
type Candles struct {
	client     *Client
	Instrument Instrument
	Period     time.Duration
	Series     *techan.TimeSeries
}

func NewCandles(client *Client, instrument Instrument, period time.Duration) *Candles {
	return &Candles{
		client:     client,
		Instrument: instrument,
		Period:     period,
		Series:     techan.NewTimeSeries(),
	}
}

// Load скачивает историю за указанный период и вливает её в серию
func (cs *Candles) Load(ctx context.Context, from time.Time, to time.Time) error {
	tf, err := Duration2Timeframe(cs.Period)
	if err != nil {
		return err
	}
	result := cs.client.GetHistory(ctx, cs.Instrument.Ticker(), from.Unix(), to.Unix(),
		cs.Instrument.Exchange(), tf, FormatSimple)
	history, _ := result["history"].([]any)
	for _, item := range history {
		candle, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t, _ := candle["time"].(float64)
		cs.Upsert(&techan.Candle{
			Period:     techan.NewTimePeriod(time.Unix(int64(t), 0), cs.Period),
			OpenPrice:  big.NewDecimal(number(candle["open"])),
			MaxPrice:   big.NewDecimal(number(candle["high"])),
			MinPrice:   big.NewDecimal(number(candle["low"])),
			ClosePrice: big.NewDecimal(number(candle["close"])),
			Volume:     big.NewDecimal(number(candle["volume"])),
		})
	}
	return nil
}

func (cs *Candles) Upsert(newCandle *techan.Candle) {
	if cs.Period != newCandle.Period.Length() {
		l.DPanic("cs.Period != newCandle.Period.Length()")
		return
	}
	UpsertSeries(cs.Series, newCandle)
}

func (cs *Candles) Save(dataDir string) error {
	return SaveTimeSeries(dataDir, cs.Instrument.String(), cs.Period, cs.Series)
}

func (cs *Candles) LoadFromData(dataDir string) error {
	series, err := LoadTimeSeries(dataDir, cs.Instrument.String(), cs.Period)
	if err != nil {
		return err
	}
	for _, candle := range series.Candles {
		cs.Upsert(candle)
	}
	return nil
}

func number(v any) float64 {
	f, _ := v.(float64)
	return f
}

//TODO очень не оптимально, надо переделывать, например на деление пополам с кешированием последней найденной позиции
func FindSeries(series *techan.TimeSeries, time time.Time) int {
	if series == nil {
		return -1
	}
	for idx, c := range series.Candles {
		if (time.After(c.Period.Start) && time.Before(c.Period.End)) ||
			time.Equal(c.Period.Start) {
			return idx
		}
	}
	return -1
}

func UpsertSeries(series *techan.TimeSeries, newCandle *techan.Candle) {
	idx := FindSeries(series, newCandle.Period.Start)

	if idx != -1 {
		series.Candles[idx] = newCandle
	} else {
		if !series.AddCandle(newCandle) {
			series.Candles = append(series.Candles, newCandle)
			slices.SortFunc(series.Candles, func(a *techan.Candle, b *techan.Candle) bool {
				return a.Period.Start.Before(b.Period.Start)
			})
		}
	}
}

func getFileName(dataDir string, symbol string, period time.Duration) string {
	return path.Join(dataDir, symbol+"_"+period.String()+".csv")
}

func LoadTimeSeries(dataDir string, symbol string, period time.Duration) (*techan.TimeSeries, error) {
	fileName := getFileName(dataDir, symbol, period)
	file, err := os.Open(fileName)
	if err != nil {
		l.Debug("Ранее скаченных файлов со свечами нет", zap.String("fileName", fileName), zap.Error(err))
		return nil, err
	}
	defer file.Close()
	result := techan.NewTimeSeries()
	r := csv.NewReader(bufio.NewReader(file))
	line := 0
	for {
		line++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Fatal("Ошибка парсинга файла", zap.String("fileName", fileName), zap.Error(err))
		}
		if len(record) != 6 {
			l.Fatal("Количество столбцов отличается от 6", zap.Int("line", line), zap.String("fileName", fileName))
		}
		if line == 1 {
			//пропускаем строку с загоовком
			continue
		}

		t, err := time.Parse("2006-01-02 15:04", record[0])
		if err != nil {
			l.DPanic("time.Parse error",
				zap.String("fileName", fileName),
				zap.Int("line", line),
				zap.Error(err),
			)
		}

		result.AddCandle(&techan.Candle{
			Period:     techan.NewTimePeriod(t, period),
			OpenPrice:  big.NewFromString(record[1]),
			MaxPrice:   big.NewFromString(record[2]),
			MinPrice:   big.NewFromString(record[3]),
			ClosePrice: big.NewFromString(record[4]),
			Volume:     big.NewFromString(record[5]),
		})
	}
	return result, nil
}

func SaveTimeSeries(dataDir string, symbol string, period time.Duration, timeSeries *techan.TimeSeries) error {
	fileName := getFileName(dataDir, symbol, period)
	path := filepath.Dir(fileName)
	if err := os.MkdirAll(path, os.ModePerm); err != nil && !os.IsExist(err) {
		l.DPanic("не смог создать каталог",
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	file, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		l.DPanic("не открыть файл",
			zap.String("fileName", fileName),
			zap.Error(err))
		return err
	}
	defer file.Close()

	datawriter := bufio.NewWriter(file)
	defer datawriter.Flush()

	datawriter.WriteString("Time,Open,High,Low,Close,Volume\n") //nolint:golint,errcheck
	for _, candle := range timeSeries.Candles {
		_, err = datawriter.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			candle.Period.Start.Format("2006-01-02 15:04"),
			candle.OpenPrice,
			candle.MaxPrice,
			candle.MinPrice,
			candle.ClosePrice,
			candle.Volume,
		))
		if err != nil {
			l.DPanic("не смог записать в файл",
				zap.String("fileName", fileName),
				zap.Error(err))
			return err
		}
	}
	return nil
}
