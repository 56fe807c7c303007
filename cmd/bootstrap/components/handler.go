package components

import (
	"github.com/zhangwenhan0216/reservation/internal/handler"
	"github.com/zhangwenhan0216/reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
