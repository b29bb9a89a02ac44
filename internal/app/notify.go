package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

// Темы и тексты почтовых уведомлений.
const (
	subjectRegistered = "Registration Successful"
	bodyRegistered    = "Your account has been created successfully."

	subjectLoggedIn = "Login Successful"
	bodyLoggedIn    = "You have successfully logged in to your Notes API account."

	subjectLoggedOut = "Logout Successful"
	bodyLoggedOut    = "You have successfully logged out from your Notes API account."

	subjectNoteCreated = "Note Created"
)

// notifyTimeout ограничивает время отправки одного уведомления,
// чтобы медленный SMTP сервер не задерживал ответ.
const notifyTimeout = 10 * time.Second

const msgNotificationFailed = "failed to send notification email"

// notify отправляет почтовое уведомление по принципу fire-and-forget:
// ошибка отправки логируется и отбрасывается, статус и тело ответа
// основной операции от нее не зависят.
func notify(ctx context.Context, mailer svc.Mailer, to, subject, body string) {
	if mailer == nil || to == "" {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	err := mailer.Send(sendCtx, &svc.Message{To: to, Subject: subject, Body: body})
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgNotificationFailed,
			zap.String("subject", subject),
			zap.Error(err))
	}
}

// noteCreatedBody формирует текст уведомления о созданной заметке.
func noteCreatedBody(title string) string {
	return fmt.Sprintf("Your note %q was created successfully.", title)
}
