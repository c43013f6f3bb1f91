package alor

// идентификаторы клиента: счёт + портфель
type User struct {
	account   string
	portfolio string
}

type userWire struct {
	Account   string `json:"account"`
	Portfolio string `json:"portfolio"`
}

func NewUser(account string, portfolio string) User {
	return User{account: account, portfolio: portfolio}
}

func (u User) Account() string   { return u.account }
func (u User) Portfolio() string { return u.portfolio }

func (u User) asWire() userWire {
	return userWire{
		Account:   u.account,
		Portfolio: u.portfolio,
	}
}
