package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Times"
	fontSize   = 12
	lineHeight = 6
	margin     = 20
)

// GenerateLetter pdf А4 с текстом письма. Используются встроенные шрифты (cp1252),
// символы вне кодировки заменяются
func GenerateLetter(letter string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateLetter panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Leave Application", true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(letter, "\n") {
		if line == "" {
			pdf.Ln(lineHeight)
			continue
		}
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
