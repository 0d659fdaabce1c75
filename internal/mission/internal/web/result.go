package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studio/internal/mission/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	missionNotFoundResult = ginx.Result{
		Code: errs.MissionNotFound.Code,
		Msg:  errs.MissionNotFound.Msg,
	}
	duplicatedResult = ginx.Result{
		Code: errs.ApplicationDuplicated.Code,
		Msg:  errs.ApplicationDuplicated.Msg,
	}
	invalidApplicationResult = ginx.Result{
		Code: errs.InvalidApplication.Code,
		Msg:  errs.InvalidApplication.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
)

// withStatus 业务错误需要特定的 HTTP 状态码
func withStatus(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}
