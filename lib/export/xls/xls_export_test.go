package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"leave-letter-backend/models"
	dbmodels "leave-letter-backend/models/db"
)

func TestExportDeliveryList(t *testing.T) {
	t.Run(`header and rows`, func(t *testing.T) {
		list := []dbmodels.LetterDelivery{
			{
				BaseModel:      dbmodels.BaseModel{CreatedAt: time.Date(2025, 7, 4, 10, 30, 0, 0, time.UTC)},
				RecipientEmail: "hr@acme.com",
				Subject:        "Leave Application",
				Status:         models.DeliveryStatusSent,
			},
			{
				BaseModel:      dbmodels.BaseModel{CreatedAt: time.Date(2025, 7, 5, 9, 0, 0, 0, time.UTC)},
				RecipientEmail: "lee@haca.edu",
				Subject:        "Leave Application",
				Status:         models.DeliveryStatusFailed,
				Error:          "smtp клиент не настроен",
			},
		}
		buf, err := impl{}.ExportDeliveryList(list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		sheet := "Отправленные письма"
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, deliveryHeaders, rows[0])
		require.Equal(t, "04.07.2025 10:30", rows[1][0])
		require.Equal(t, "hr@acme.com", rows[1][1])
		require.Equal(t, "Отправлено", rows[1][3])
		require.Equal(t, "Ошибка отправки", rows[2][3])
		require.Equal(t, "smtp клиент не настроен", rows[2][4])
	})

	t.Run(`empty list`, func(t *testing.T) {
		buf, err := impl{}.ExportDeliveryList(nil)
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Отправленные письма")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
