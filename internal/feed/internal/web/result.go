package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/feed/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCoordinatesResult = ginx.Result{
		Code: errs.InvalidCoordinates.Code,
		Msg:  errs.InvalidCoordinates.Msg,
	}
)
