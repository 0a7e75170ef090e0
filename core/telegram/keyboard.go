package telegram

import tele "gopkg.in/telebot.v4"

// Btn describes an inline button carrying a label and an opaque action key.
type Btn struct {
	Text   string
	Action string
}

// Row groups buttons into a single keyboard row.
func Row(buttons ...Btn) []Btn {
	return buttons
}

// InlineMarkup builds an inline keyboard from ordered rows of Btn. Rows with
// no buttons are skipped; a nil result means no keyboard at all.
func InlineMarkup(rows [][]Btn) *tele.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}
	markup := &tele.ReplyMarkup{}
	inline := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tele.InlineButton, len(row))
		for j, btn := range row {
			r[j] = *markup.Data(btn.Text, btn.Action).Inline()
		}
		inline = append(inline, r)
	}
	if len(inline) == 0 {
		return nil
	}
	markup.InlineKeyboard = inline
	return markup
}

// ChunkButtons splits a flat list of buttons into rows with up to n per row.
func ChunkButtons(buttons []Btn, n int) [][]Btn {
	if n <= 1 {
		out := make([][]Btn, 0, len(buttons))
		for _, b := range buttons {
			out = append(out, []Btn{b})
		}
		return out
	}
	var rows [][]Btn
	for i := 0; i < len(buttons); i += n {
		end := i + n
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
