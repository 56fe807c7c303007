package bootstrap

import (
	"github.com/zhangwenhan0216/reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

func Module(configPath string) fx.Option {
	return fx.Options(
		ConfigModule(configPath),
		LoggerModule,
		DBModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
