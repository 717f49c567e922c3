package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

var (
	// ErrNoCookie в запросе нет cookie сессии
	ErrNoCookie = errors.New("session: cookie not found")

	// ErrInvalidCookie cookie повреждена, подделана или истекла
	ErrInvalidCookie = errors.New("session: invalid cookie")
)

// Cookies подписанная и зашифрованная cookie с ID сессии
type Cookies struct {
	name string
	sc   *securecookie.SecureCookie
}

// NewCookies создает менеджер cookie. maxAge ограничивает срок жизни подписанного значения.
func NewCookies(name string, hashKey, blockKey []byte, maxAge time.Duration) *Cookies {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(maxAge.Seconds()))
	return &Cookies{name: name, sc: sc}
}

// Set записывает ID сессии в cookie до expiresAt
func (c *Cookies) Set(w http.ResponseWriter, r *http.Request, sessionID string, expiresAt time.Time) error {
	encoded, err := c.sc.Encode(c.name, sessionID)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrInvalidCookie, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    encoded,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

// Clear удаляет cookie сессии
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Read возвращает ID сессии из cookie запроса
func (c *Cookies) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return "", ErrNoCookie
	}

	var sessionID string
	if err := c.sc.Decode(c.name, cookie.Value, &sessionID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	return sessionID, nil
}
