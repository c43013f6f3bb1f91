package alor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// путь обновления access-токена на сервере авторизации
const RefreshTokenURI = "/refresh"

// опции одного запроса к API
type RequestOptions struct {
	Headers http.Header
	Query   url.Values
	Body    []byte
}

// последний полученный ответ, перезаписывается каждым запросом
type response struct {
	statusCode int
	status     string
	body       []byte
}

// Client — клиент Alor OpenAPI. Оборачивает транспорт, навешивает bearer-токен
// и хранит последний ответ для последующей интерпретации. Запросы не повторяются
// и не таймаутятся сверх настроек транспорта. Один экземпляр — один поток вызовов:
// lastResponse перезаписывается, параллельные запросы через общий клиент небезопасны.
type Client struct {
	baseURI         string
	refreshTokenURI string
	username        string
	password        string
	httpClient      *http.Client
	storage         TokenStorage
	tokens          *Tokens
	lastResponse    *response
}

func NewClient(baseURI string, username string, password string, refreshTokenURI string, storage TokenStorage) *Client {
	if storage == nil {
		storage = NewFileTokenStorage("")
	}
	return &Client{
		baseURI:         strings.TrimRight(baseURI, "/"),
		refreshTokenURI: strings.TrimRight(refreshTokenURI, "/"),
		username:        username,
		password:        password,
		httpClient:      &http.Client{},
		storage:         storage,
	}
}

// Open загружает сохранённые токены и обновляет access-токен.
// Ошибка обновления фатальна: работать с просроченным токеном смысла нет.
func (c *Client) Open(ctx context.Context) error {
	return c.refreshToken(ctx)
}

// HasJWT сообщает, есть ли у клиента access-токен
func (c *Client) HasJWT() bool {
	return c.tokens != nil && c.tokens.JWT() != ""
}

// HasRefreshToken сообщает, есть ли refresh-токен
func (c *Client) HasRefreshToken() bool {
	return c.tokens != nil && c.tokens.RefreshToken() != ""
}

// HasRefreshExpirationAt сообщает, известно ли время истечения refresh-токена
func (c *Client) HasRefreshExpirationAt() bool {
	return c.tokens != nil && c.tokens.RefreshExpirationAt() != 0
}

// stale сообщает, истёк ли сохранённый access-токен по времени записи хранилища
func (c *Client) stale() bool {
	modTime, err := c.storage.ModTime()
	if err != nil {
		return true
	}
	return time.Now().After(modTime.Add(AccessTokenExpirationTime))
}

// refreshToken обменивает refresh-токен на новый access-токен и перезаписывает
// сохранённый набор параметров. Токены дёшево кешировать между запусками,
// поэтому обновление ленивое, без фонового таймера.
func (c *Client) refreshToken(ctx context.Context) error {
	needUpdate := false
	tokens, err := c.storage.Load()
	if err != nil {
		return err
	}
	if tokens != nil {
		c.tokens = tokens
		// задумка была обновлять по истечении TTL, но сервер принимает обновление
		// в любой момент, поэтому обновляем всегда, пока есть refresh-токен
		l.Debug("токены загружены из хранилища", zap.Bool("stale", c.stale()))
		needUpdate = true
	}

	if !needUpdate || !c.HasRefreshToken() {
		return nil
	}

	refreshURL := c.refreshTokenURI + RefreshTokenURI + "?token=" + url.QueryEscape(c.tokens.RefreshToken())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, refreshURL, nil)
	if err != nil {
		return errors.Wrap(err, "build refresh request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "refresh token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &AuthRefreshError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read refresh response")
	}
	refreshed := DecodeBody(body)
	accessToken, _ := refreshed["AccessToken"].(string)
	if accessToken != "" {
		c.tokens.SetJWT(accessToken)
		if err := c.storage.Save(c.tokens); err != nil {
			return err
		}
	}
	return nil
}

// SendRequest выполняет ровно один HTTP-запрос к API и запоминает ответ,
// затирая предыдущий. Заголовок Accept ставится по умолчанию, если вызывающий
// не передал свой. При auth bearer-токен читается в момент вызова, так что
// обновлённый токен подхватывается автоматически.
func (c *Client) SendRequest(ctx context.Context, path string, opts *RequestOptions, auth bool, method string) error {
	c.lastResponse = nil

	var body io.Reader
	if opts != nil && len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURI+path, body)
	if err != nil {
		return errors.Wrapf(err, "build request %s %s", method, path)
	}
	if opts != nil {
		for key, values := range opts.Headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
		if len(opts.Query) > 0 {
			req.URL.RawQuery = opts.Query.Encode()
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", ContentTypeJSON)
	}
	if auth && c.tokens != nil {
		c.tokens.OAuth2().SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsMetric.WithLabelValues(method, "transport_error").Inc()
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read response %s %s", method, path)
	}
	c.lastResponse = &response{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       data,
	}
	requestsMetric.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	return nil
}

// IsResponseStatusCode проверяет, что ответ получен и его статус равен указанному
func (c *Client) IsResponseStatusCode(statusCode int) bool {
	return c.lastResponse != nil && c.lastResponse.statusCode == statusCode
}

// DecodeBody разбирает json-объект из сырого тела ответа.
// Используется и вне успешного пути, для разбора тел ошибок. При невалидном json — nil.
func DecodeBody(body []byte) map[string]any {
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil
	}
	return result
}

// ResponseAsArray возвращает тело последнего ответа как json-объект
func (c *Client) ResponseAsArray() (map[string]any, error) {
	if c.lastResponse == nil {
		return nil, ErrNoResponse
	}
	return DecodeBody(c.lastResponse.body), nil
}

// ResponseAsList возвращает тело последнего ответа как json-массив объектов
func (c *Client) ResponseAsList() ([]map[string]any, error) {
	if c.lastResponse == nil {
		return nil, ErrNoResponse
	}
	var result []map[string]any
	if err := json.Unmarshal(c.lastResponse.body, &result); err != nil {
		return nil, errors.Wrap(err, "decode response list")
	}
	return result, nil
}

// ResponseAsInteger возвращает тело последнего ответа как целое число
func (c *Client) ResponseAsInteger() (int64, error) {
	if c.lastResponse == nil {
		return 0, ErrNoResponse
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(c.lastResponse.body)), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse response as integer")
	}
	return value, nil
}

// ResponseAsString возвращает тело последнего ответа как строку
func (c *Client) ResponseAsString() (string, error) {
	if c.lastResponse == nil {
		return "", ErrNoResponse
	}
	return string(c.lastResponse.body), nil
}

// getObject выполняет GET и возвращает тело как json-объект.
// Любой не-200 превращается в пустой результат: на read-only путях ошибки
// не пробрасываются, только логируются в debug.
func (c *Client) getObject(ctx context.Context, path string, query url.Values, auth bool) map[string]any {
	if !c.get(ctx, path, query, auth) {
		return map[string]any{}
	}
	result, err := c.ResponseAsArray()
	if err != nil || result == nil {
		return map[string]any{}
	}
	return result
}

// getList выполняет GET и возвращает тело как json-массив объектов.
// Поведение при ошибках такое же, как у getObject.
func (c *Client) getList(ctx context.Context, path string, query url.Values, auth bool) []map[string]any {
	if !c.get(ctx, path, query, auth) {
		return []map[string]any{}
	}
	result, err := c.ResponseAsList()
	if err != nil {
		l.Debug("не смог разобрать тело ответа", zap.String("path", path), zap.Error(err))
		return []map[string]any{}
	}
	return result
}

func (c *Client) get(ctx context.Context, path string, query url.Values, auth bool) bool {
	err := c.SendRequest(ctx, path, &RequestOptions{Query: query}, auth, http.MethodGet)
	if err != nil {
		l.Debug("запрос не выполнен", zap.String("path", path), zap.Error(err))
		return false
	}
	if !c.IsResponseStatusCode(http.StatusOK) {
		l.Debug("неожиданный статус ответа",
			zap.String("path", path),
			zap.Int("statusCode", c.lastResponse.statusCode),
		)
		return false
	}
	return true
}
