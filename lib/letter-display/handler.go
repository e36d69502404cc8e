package letterdisplay

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	deliveryhandler "leave-letter-backend/lib/delivery"
	pdfexport "leave-letter-backend/lib/export/pdf"
	filestorage "leave-letter-backend/lib/file-storage"
	"leave-letter-backend/lib/smtp"
	"leave-letter-backend/models"
	letterapimodels "leave-letter-backend/models/api/letter"
)

const (
	TextFileName = "leave-application.txt"
	PdfFileName  = "leave-application.pdf"
	pageTitle    = "Leave Application"
)

//go:embed static/letter_print.html
var printTemplateBody string

var printTemplate = template.Must(template.New("letter_print").Parse(printTemplateBody))

type Provider interface {
	Download(letter string) []byte
	PrintView(letter string) (string, error)
	Pdf(letter string) ([]byte, error)
	Share(ctx context.Context, userID, letter string) (letterapimodels.ShareView, error)
	Email(ctx context.Context, userID, replyTo string, req letterapimodels.EmailRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(filestorage.Instance, smtp.Instance, deliveryhandler.Instance)
}

// NewInstance storage и mailer могут быть nil, если интеграции не настроены
func NewInstance(storage filestorage.Provider, mailer smtp.Provider, journal deliveryhandler.Provider) Provider {
	return impl{
		storage: storage,
		mailer:  mailer,
		journal: journal,
	}
}

type impl struct {
	storage filestorage.Provider
	mailer  smtp.Provider
	journal deliveryhandler.Provider
}

func (i impl) Download(letter string) []byte {
	return []byte(letter)
}

// PrintView текст письма экранируется шаблоном и печатается без изменений
func (i impl) PrintView(letter string) (string, error) {
	data := models.LetterPageData{
		Title:  pageTitle,
		Letter: letter,
	}
	buf := new(bytes.Buffer)
	err := printTemplate.Execute(buf, data)
	if err != nil {
		return "", errors.Wrap(err, "ошибка формирования страницы печати")
	}
	return buf.String(), nil
}

func (i impl) Pdf(letter string) ([]byte, error) {
	return pdfexport.GenerateLetter(letter)
}

func (i impl) Share(ctx context.Context, userID, letter string) (letterapimodels.ShareView, error) {
	if i.storage == nil {
		return letterapimodels.ShareView{}, ErrStorageUnavailable
	}
	logger := log.WithField("user_id", userID)
	file, err := i.Pdf(letter)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования pdf письма")
		return letterapimodels.ShareView{}, err
	}
	objectKey, err := i.storage.UploadLetter(ctx, userID, file)
	if err != nil {
		return letterapimodels.ShareView{}, err
	}
	link, err := i.storage.GetLink(ctx, objectKey)
	if err != nil {
		logger.WithError(err).Error("ошибка получения ссылки на письмо")
		return letterapimodels.ShareView{}, err
	}
	return letterapimodels.ShareView{
		URL:       link,
		ExpiresIn: int64(i.storage.LinkTTL().Seconds()),
	}, nil
}

func (i impl) Email(ctx context.Context, userID, replyTo string, req letterapimodels.EmailRequest) error {
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return ErrMailUnavailable
	}
	mail := smtp.Mail{
		To:      req.RecipientEmail,
		ReplyTo: replyTo,
		Subject: req.GetSubject(),
		Body:    req.Letter,
	}
	if req.AttachPdf {
		file, err := i.Pdf(req.Letter)
		if err != nil {
			return err
		}
		mail.Attachments = append(mail.Attachments, smtp.Attachment{
			FileName:    PdfFileName,
			ContentType: "application/pdf",
			Body:        file,
		})
	}
	err := i.mailer.SendEMail(mail)
	if i.journal != nil {
		i.journal.Record(ctx, userID, req.RecipientEmail, mail.Subject, req.Letter, err)
	}
	return err
}
