package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/relation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	selfFollowResult = ginx.Result{
		Code: errs.SelfFollow.Code,
		Msg:  errs.SelfFollow.Msg,
	}
)
