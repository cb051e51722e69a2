package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/challenge/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	challengeNotFoundResult = ginx.Result{
		Code: errs.ChallengeNotFound.Code,
		Msg:  errs.ChallengeNotFound.Msg,
	}
	notCompletedResult = ginx.Result{
		Code: errs.NotCompleted.Code,
		Msg:  errs.NotCompleted.Msg,
	}
	alreadyClaimedResult = ginx.Result{
		Code: errs.AlreadyClaimed.Code,
		Msg:  errs.AlreadyClaimed.Msg,
	}
	invalidChallengeResult = ginx.Result{
		Code: errs.InvalidChallenge.Code,
		Msg:  errs.InvalidChallenge.Msg,
	}
)
