//go:build wireinject

package mission

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/mission/internal/event"
	"github.com/ecodeclub/studio/internal/mission/internal/repository"
	"github.com/ecodeclub/studio/internal/mission/internal/repository/cache"
	"github.com/ecodeclub/studio/internal/mission/internal/repository/dao"
	"github.com/ecodeclub/studio/internal/mission/internal/service"
	"github.com/ecodeclub/studio/internal/mission/internal/web"
	"github.com/ecodeclub/studio/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, mailer email.Service) *Module {
	wire.Build(
		initMissionDAO,
		cache.NewMissionCache,
		repository.NewMissionRepository,
		initApplicationEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		service.NewAdminService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initMissionDAO(db *egorm.Component) dao.MissionDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMMissionDAO(db)
}

func initApplicationEventProducer(q mq.MQ) event.MissionApplicationEventProducer {
	producer, err := event.NewMissionApplicationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
