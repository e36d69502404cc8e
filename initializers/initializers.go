package initializers

import (
	"context"

	"leave-letter-backend/config"
	"leave-letter-backend/fiberlog"
	deliveryhandler "leave-letter-backend/lib/delivery"
	xlsexport "leave-letter-backend/lib/export/xls"
	letterdisplay "leave-letter-backend/lib/letter-display"
	"leave-letter-backend/lib/profile"
	connectionhub "leave-letter-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	xlsexport.NewHandler()
	profile.NewHandler()
	deliveryhandler.NewHandler()
	letterdisplay.NewHandler()
	InitFormSession(ctx)
}
