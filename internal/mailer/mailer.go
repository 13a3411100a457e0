package mailer

import (
	"log/slog"

	"github.com/immxrtalbeast/techflow_meet/lib/logger/sl"
	gomail "gopkg.in/gomail.v2"
)

// Message is a rendered email ready for dispatch.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender dispatches mail fire-and-forget: callers never learn about
// delivery failures, those are only logged here.
type Sender interface {
	Send(msg Message)
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *slog.Logger
	queue  chan Message
}

func New(cfg SMTPConfig, log *slog.Logger) *Mailer {
	if log == nil {
		log = slog.Default()
	}

	m := &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
		queue:  make(chan Message, 64),
	}

	go m.run()

	return m
}

// Send enqueues the message without blocking. A full queue drops the
// message rather than stalling the caller.
func (m *Mailer) Send(msg Message) {
	select {
	case m.queue <- msg:
	default:
		m.log.Warn("mail queue full, dropping message", slog.String("to", msg.To))
	}
}

func (m *Mailer) run() {
	for msg := range m.queue {
		gm := gomail.NewMessage()
		gm.SetHeader("From", m.from)
		gm.SetHeader("To", msg.To)
		gm.SetHeader("Subject", msg.Subject)
		gm.SetBody("text/html", msg.HTML)

		if err := m.dialer.DialAndSend(gm); err != nil {
			m.log.Error("failed to send email", slog.String("to", msg.To), sl.Err(err))
			continue
		}

		m.log.Info("email sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	}
}
