package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/comment/internal/errs"
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
	commentNotFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
	invalidCommentResult = ginx.Result{
		Code: errs.InvalidComment.Code,
		Msg:  errs.InvalidComment.Msg,
	}
)
