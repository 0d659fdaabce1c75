package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studio/internal/waitlist/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidEmailResult = ginx.Result{
		Code: errs.InvalidEmail.Code,
		Msg:  errs.InvalidEmail.Msg,
	}
	alreadyJoinedResult = ginx.Result{
		Code: errs.AlreadyJoined.Code,
		Msg:  errs.AlreadyJoined.Msg,
	}
)

func withStatus(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}
