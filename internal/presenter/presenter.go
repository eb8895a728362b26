// Package presenter builds the texts and inline keyboards shown to users.
// Every function is pure: the same domain data always yields the same
// (text, markup) pair, so views are testable without a bot session.
package presenter

import (
	tele "gopkg.in/telebot.v3"
)

// ErrGeneric is the fallback message for failed collaborator calls
const ErrGeneric = "Hubo un error. Por favor, intenta nuevamente."

func btn(text, data string) tele.Btn {
	return tele.Btn{Text: text, Data: data}
}

func inline(rows ...tele.Row) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(rows...)
	return m
}
