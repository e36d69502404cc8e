package smtp

import (
	"bytes"
	"io"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Attachment struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Mail письмо адресату; ReplyTo - почта заявителя
type Mail struct {
	To          string
	ReplyTo     string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Provider interface {
	SendEMail(mail Mail) error
	IsConfigured() bool
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) sender() string {
	if i.from != "" {
		return i.from
	}
	return i.user
}

func (i impl) SendEMail(mail Mail) (err error) {
	logger := log.WithField("recipient", mail.To)
	if !i.IsConfigured() {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return errors.New("smtp клиент не настроен")
	}
	body, err := BuildMessage(i.sender(), mail)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма")
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	addr := i.host + ":" + i.port
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.sender(), []string{mail.To}, body)
	} else {
		err = smtp.SendMail(addr, auth, i.sender(), []string{mail.To}, body)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отправки сообщения")
		return errors.Wrap(err, "ошибка отправки сообщения")
	}
	logger.Info("письмо отправлено")
	return nil
}

// BuildMessage MIME сообщение: текст письма и вложения
func BuildMessage(from string, mail Mail) (io.Reader, error) {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", from)
	m.SetHeader("To", mail.To)
	if mail.ReplyTo != "" {
		m.SetHeader("Reply-To", mail.ReplyTo)
	}
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.Body)
	for _, att := range mail.Attachments {
		data := att.Body
		m.Attach(att.FileName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {att.ContentType}}),
		)
	}
	buf := new(bytes.Buffer)
	if _, err := m.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования MIME сообщения")
	}
	return buf, nil
}
