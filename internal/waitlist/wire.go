//go:build wireinject

package waitlist

import (
	"sync"

	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/waitlist/internal/repository"
	"github.com/ecodeclub/studio/internal/waitlist/internal/repository/dao"
	"github.com/ecodeclub/studio/internal/waitlist/internal/service"
	"github.com/ecodeclub/studio/internal/waitlist/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, mailer email.Service) *Module {
	wire.Build(
		initUserDAO,
		repository.NewUserRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initUserDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}
