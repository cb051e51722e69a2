package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/boost/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	pointsNotEnoughResult = ginx.Result{
		Code: errs.PointsNotEnough.Code,
		Msg:  errs.PointsNotEnough.Msg,
	}
	unknownTypeResult = ginx.Result{
		Code: errs.UnknownType.Code,
		Msg:  errs.UnknownType.Msg,
	}
	videoNotFoundResult = ginx.Result{
		Code: errs.VideoNotFound.Code,
		Msg:  errs.VideoNotFound.Msg,
	}
	notOwnerResult = ginx.Result{
		Code: errs.NotOwner.Code,
		Msg:  errs.NotOwner.Msg,
	}
	noProductResult = ginx.Result{
		Code: errs.NoProduct.Code,
		Msg:  errs.NoProduct.Msg,
	}
)
