package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/engagement/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicatedActionResult = ginx.Result{
		Code: errs.DuplicatedAction.Code,
		Msg:  errs.DuplicatedAction.Msg,
	}
	targetNotFoundResult = ginx.Result{
		Code: errs.TargetNotFound.Code,
		Msg:  errs.TargetNotFound.Msg,
	}
)
