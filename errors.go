package alor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse возвращается аксессорами ответа, если к этому моменту не было выполнено ни одного запроса
	ErrNoResponse = errors.New("alor: no response available")

	// ErrOrderIDNotSet возвращается Change/Delete, если заявка ещё не была успешно отправлена
	ErrOrderIDNotSet = errors.New("alor: order id not set")
)

// AuthRefreshError — ошибка обновления access-токена. Фатальна для создания клиента.
type AuthRefreshError struct {
	StatusCode int
	Status     string
}

func (e *AuthRefreshError) Error() string {
	return fmt.Sprintf("alor: error while refresh token. HTTP status code: %d - %s", e.StatusCode, e.Status)
}
