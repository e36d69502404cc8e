package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "leave-letter-backend/models/db"
)

type Provider interface {
	ExportDeliveryList(list []dbmodels.LetterDelivery) (*bytes.Buffer, error)
}

var Instance Provider = impl{}

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var deliveryHeaders = []string{"Дата отправки", "Получатель", "Тема", "Статус", "Ошибка"}

func (i impl) ExportDeliveryList(list []dbmodels.LetterDelivery) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, deliveryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeDeliveryData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Отправленные письма"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeDeliveryData(f *excelize.File, sheet string, list []dbmodels.LetterDelivery, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(deliveryHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.CreatedAt.Format("02.01.2006 15:04"),
			item.RecipientEmail,
			item.Subject,
			item.Status.ToHuman(),
			item.Error,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
