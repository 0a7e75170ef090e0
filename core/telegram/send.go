package telegram

import tele "gopkg.in/telebot.v4"

// SendMD sends a message with Markdown parse mode and optional keyboard rows.
func SendMD(c tele.Context, text string, rows [][]Btn) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: InlineMarkup(rows)}
	return c.Send(text, opts)
}

// EditMD edits the current message with Markdown parse mode and optional
// keyboard rows.
func EditMD(c tele.Context, text string, rows [][]Btn) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: InlineMarkup(rows)}
	return c.Edit(text, opts)
}

// EditOrSendMD tries to edit the message or sends a new one if edit fails.
// Button presses edit in place so the menu feels like one screen.
func EditOrSendMD(c tele.Context, text string, rows [][]Btn) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: InlineMarkup(rows)}
	return c.EditOrSend(text, opts)
}
