package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studio/internal/content/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ContentNotFound.Code,
		Msg:  errs.ContentNotFound.Msg,
	}
)
