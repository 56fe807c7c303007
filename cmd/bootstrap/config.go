package bootstrap

import (
	"github.com/zhangwenhan0216/reservation/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads configuration from path, or from the first file found
// by config.FindConfigFile when path is empty.
func ConfigModule(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			func() (config.Config, error) {
				return config.Load(path)
			},
		),
	)
}
