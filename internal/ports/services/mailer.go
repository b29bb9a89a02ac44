package services

import "context"

// Message представляет почтовое уведомление.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer определяет интерфейс отправки почтовых уведомлений.
// Доставка негарантированная: вызывающая сторона логирует ошибку
// и никогда не транслирует ее клиенту.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
