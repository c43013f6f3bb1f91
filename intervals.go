package alor

// Помошники по трансформации таймфреймов в разные форматы

import (
	"time"

	"github.com/pkg/errors"
)

var Timeframe2string = map[int]string{
	TF15Sec: "15sec",
	TF1Min:  "1min",
	TF5Min:  "5min",
	TF15Min: "15min",
	TF1Hour: "hour",
	TF1Day:  "day",
}

func Duration2Timeframe(d time.Duration) (int, error) {
	switch d {
	case 15 * time.Second:
		return TF15Sec, nil
	case time.Minute:
		return TF1Min, nil
	case 5 * time.Minute:
		return TF5Min, nil
	case 15 * time.Minute:
		return TF15Min, nil
	case time.Hour:
		return TF1Hour, nil
	case 24 * time.Hour:
		return TF1Day, nil
	default:
		return 0, errors.Errorf("unsupported candle period %s", d)
	}
}

func Timeframe2Duration(tf int) time.Duration {
	return time.Duration(tf) * time.Second
}
