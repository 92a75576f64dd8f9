package usecase

import (
	"vault-srv/internal/notifier"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
)

type usecase struct {
	l      pkgLog.Logger
	mailer mailer.IMailer
	push   notifier.PushSender
}

// New creates the stage notification dispatcher. push may be nil when push
// delivery is not configured.
func New(l pkgLog.Logger, m mailer.IMailer, push notifier.PushSender) notifier.UseCase {
	return &usecase{
		l:      l,
		mailer: m,
		push:   push,
	}
}
