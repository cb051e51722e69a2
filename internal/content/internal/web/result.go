package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/content/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	videoNotFoundResult = ginx.Result{
		Code: errs.VideoNotFound.Code,
		Msg:  errs.VideoNotFound.Msg,
	}
	invalidVideoResult = ginx.Result{
		Code: errs.InvalidVideo.Code,
		Msg:  errs.InvalidVideo.Msg,
	}
)
