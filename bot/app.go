package bot

import (
	"strings"

	tele "gopkg.in/telebot.v4"

	tg "crushbot/core/telegram"
)

// Routes binds the dispatcher to telebot endpoints. Callback queries are
// acknowledged before any work so the client's spinner never hangs on a
// slow or failing handler.
func Routes(d *Dispatcher) []tg.Route {
	routes := make([]tg.Route, 0, len(commandScreens)+2)
	for name := range commandScreens {
		cmd := name
		routes = append(routes, tg.Route{
			Name:     "cmd." + cmd,
			Endpoint: "/" + cmd,
			Handler: func(c tele.Context) error {
				v := d.Command(senderID(c), senderName(c), cmd)
				return tg.SendMD(c, v.Text, v.Rows)
			},
		})
	}

	routes = append(routes,
		tg.Route{
			Name:     "callback",
			Endpoint: tele.OnCallback,
			Handler: func(c tele.Context) error {
				_ = c.Respond()
				action := callbackAction(c)
				if action == "" {
					return nil
				}
				v := d.ButtonPress(senderID(c), senderName(c), action)
				return tg.EditOrSendMD(c, v.Text, v.Rows)
			},
		},
		tg.Route{
			Name:     "chat",
			Endpoint: tele.OnText,
			Handler: func(c tele.Context) error {
				reply := d.FreeText(tg.BuildContext(c), senderID(c), senderName(c), c.Text())
				return c.Send(reply)
			},
		},
	)
	return routes
}

func senderID(c tele.Context) int64 {
	if u := c.Sender(); u != nil {
		return u.ID
	}
	return 0
}

func senderName(c tele.Context) string {
	if u := c.Sender(); u != nil && u.FirstName != "" {
		return u.FirstName
	}
	return "baby"
}

// callbackAction extracts the action key from telebot's
// \f<unique>|<payload> callback encoding.
func callbackAction(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	if cb.Unique != "" {
		return cb.Unique
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	key, _, _ := strings.Cut(raw, "|")
	return strings.TrimSpace(key)
}
