//go:build wireinject

package content

import (
	"io/fs"

	"github.com/ecodeclub/studio/internal/content/internal/repository"
	"github.com/ecodeclub/studio/internal/content/internal/repository/dao"
	"github.com/ecodeclub/studio/internal/content/internal/service"
	"github.com/ecodeclub/studio/internal/content/internal/web"
	"github.com/google/wire"
)

func InitModule(fsys fs.FS, cfg Config) *Module {
	wire.Build(
		dao.NewFSContentDAO,
		repository.NewContentRepository,
		service.NewMarkdownRenderer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
