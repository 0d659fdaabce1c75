//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/studio/internal/content"
	"github.com/ecodeclub/studio/internal/mission"
	"github.com/ecodeclub/studio/internal/waitlist"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitContentModule,
		mission.InitModule,
		waitlist.InitModule,
		wire.FieldsOf(new(*content.Module), "Hdl"),
		wire.FieldsOf(new(*mission.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*waitlist.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initMQConsumers)
	return new(App), nil
}
