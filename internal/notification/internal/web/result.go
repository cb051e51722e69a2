package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/notification/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notificationNotFoundResult = ginx.Result{
		Code: errs.NotificationNotFound.Code,
		Msg:  errs.NotificationNotFound.Msg,
	}
)
