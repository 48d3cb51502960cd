package middleware

import (
	"net/http"

	"fyyur_app_go/config"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	flashCookieName  = "flash"
	flashIncomingKey = "flash_incoming"
	flashPendingKey  = "flash_pending"
	flashCodecKey    = "flash_codec"
)

// Flash categories
const (
	FlashInfo  = "info"
	FlashError = "error"
)

// FlashMessage is a one-shot message shown on the next rendered page
type FlashMessage struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// newFlashCodec signs flash cookies with the session secret
func newFlashCodec(secret string) *securecookie.SecureCookie {
	return securecookie.New([]byte(secret), nil).SetSerializer(securecookie.JSONEncoder{})
}

// Flash loads messages left by the previous response from a signed cookie.
// Messages survive redirects and are cleared by the first page that renders them.
// A cookie that fails to decode, e.g. one signed with an old secret, is expired.
func Flash(cfg *config.Config) echo.MiddlewareFunc {
	codec := newFlashCodec(cfg.SessionSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set(flashCodecKey, codec)

			cookie, err := c.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				var msgs []FlashMessage
				if err := codec.Decode(flashCookieName, cookie.Value, &msgs); err != nil {
					log.Warn().Err(err).Str("ip", c.RealIP()).Msg("Discarding unreadable flash cookie")
					setFlashCookie(c, "", -1)
				} else {
					c.Set(flashIncomingKey, msgs)
				}
			}

			return next(c)
		}
	}
}

// AddFlash queues a message for the next page rendered for this client
func AddFlash(c echo.Context, category string, message string) {
	pending, _ := c.Get(flashPendingKey).([]FlashMessage)
	pending = append(pending, FlashMessage{Category: category, Message: message})
	c.Set(flashPendingKey, pending)

	incoming, _ := c.Get(flashIncomingKey).([]FlashMessage)
	all := append(append([]FlashMessage{}, incoming...), pending...)

	encoded, err := codecFrom(c).Encode(flashCookieName, all)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode flash cookie")
		return
	}
	setFlashCookie(c, encoded, 0)
}

// ConsumeFlashes returns every queued message and clears the cookie.
// Call it before the response body is written.
func ConsumeFlashes(c echo.Context) []FlashMessage {
	incoming, _ := c.Get(flashIncomingKey).([]FlashMessage)
	pending, _ := c.Get(flashPendingKey).([]FlashMessage)

	if len(incoming) == 0 && len(pending) == 0 {
		return nil
	}

	msgs := append(append([]FlashMessage{}, incoming...), pending...)
	c.Set(flashIncomingKey, nil)
	c.Set(flashPendingKey, nil)
	setFlashCookie(c, "", -1)
	return msgs
}

func setFlashCookie(c echo.Context, value string, maxAge int) {
	cookie := new(http.Cookie)
	cookie.Name = flashCookieName
	cookie.Value = value
	cookie.Path = "/"
	cookie.MaxAge = maxAge
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// codecFrom returns the codec installed by Flash, or one built from the
// config in context for handlers exercised without the middleware
func codecFrom(c echo.Context) *securecookie.SecureCookie {
	if codec, ok := c.Get(flashCodecKey).(*securecookie.SecureCookie); ok {
		return codec
	}
	secret := ""
	if cfg, ok := c.Get("config").(*config.Config); ok {
		secret = cfg.SessionSecret
	}
	return newFlashCodec(secret)
}
