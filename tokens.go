package alor

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// имя файла с токенами по умолчанию
const TokensFilename = "tokens.json"

// время, через которое access-токен считается протухшим
const AccessTokenExpirationTime = 1800 * time.Second

// Tokens — параметры аутентификации в том виде, в котором их вернул брокер
// при логине или обновлении. Объект хранится и перезаписывается целиком,
// без схемы и версионирования.
type Tokens struct {
	params map[string]any
}

func NewTokens(params map[string]any) *Tokens {
	if params == nil {
		params = make(map[string]any)
	}
	return &Tokens{params: params}
}

func (t *Tokens) stringParam(key string) string {
	s, _ := t.params[key].(string)
	return s
}

// JWT возвращает access-токен
func (t *Tokens) JWT() string {
	return t.stringParam("jwt")
}

func (t *Tokens) SetJWT(jwt string) {
	t.params["jwt"] = jwt
}

// RefreshToken возвращает refresh-токен, полученный при логине
func (t *Tokens) RefreshToken() string {
	return t.stringParam("refreshToken")
}

// RefreshExpirationAt возвращает unix-время истечения refresh-токена (0 если не известно)
func (t *Tokens) RefreshExpirationAt() int64 {
	switch v := t.params["refreshExpirationAt"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// OAuth2 возвращает токен в представлении golang.org/x/oauth2,
// в таком виде он навешивается на запросы через SetAuthHeader
func (t *Tokens) OAuth2() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  t.JWT(),
		RefreshToken: t.RefreshToken(),
		TokenType:    "Bearer",
	}
	if at := t.RefreshExpirationAt(); at != 0 {
		token.Expiry = time.Unix(at, 0)
	}
	return token
}

func (t *Tokens) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.params)
}

func (t *Tokens) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.params)
}

// TokenStorage — место хранения пары токенов между запусками.
// Хранилище внедряется в клиент, что позволяет подменять его в тестах
// и работать с несколькими счетами из одного процесса.
type TokenStorage interface {
	Load() (*Tokens, error) // (nil, nil) если сохранённых токенов ещё нет
	Save(*Tokens) error
	ModTime() (time.Time, error) // время последней записи
}

var _ TokenStorage = (*FileTokenStorage)(nil)

// FileTokenStorage хранит токены в одном json-файле
type FileTokenStorage struct {
	path string
}

func NewFileTokenStorage(path string) *FileTokenStorage {
	if path == "" {
		path = TokensFilename
	}
	return &FileTokenStorage{path: path}
}

func (s *FileTokenStorage) Load() (*Tokens, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read tokens file")
	}
	tokens := NewTokens(nil)
	if err := json.Unmarshal(data, tokens); err != nil {
		return nil, errors.Wrapf(err, "parse tokens file %s", s.path)
	}
	return tokens, nil
}

func (s *FileTokenStorage) Save(tokens *Tokens) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return errors.Wrap(err, "marshal tokens")
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrapf(err, "write tokens file %s", s.path)
	}
	return nil
}

func (s *FileTokenStorage) ModTime() (time.Time, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "stat tokens file %s", s.path)
	}
	return fi.ModTime(), nil
}
