package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vyralabs/vyra/internal/battle/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	battleNotFoundResult = ginx.Result{
		Code: errs.BattleNotFound.Code,
		Msg:  errs.BattleNotFound.Msg,
	}
	alreadyVotedResult = ginx.Result{
		Code: errs.AlreadyVoted.Code,
		Msg:  errs.AlreadyVoted.Msg,
	}
	battleFinishedResult = ginx.Result{
		Code: errs.BattleFinished.Code,
		Msg:  errs.BattleFinished.Msg,
	}
	pointsNotEnoughResult = ginx.Result{
		Code: errs.PointsNotEnough.Code,
		Msg:  errs.PointsNotEnough.Msg,
	}
	invalidVoteResult = ginx.Result{
		Code: errs.InvalidVote.Code,
		Msg:  errs.InvalidVote.Msg,
	}
	invalidBattleResult = ginx.Result{
		Code: errs.InvalidBattle.Code,
		Msg:  errs.InvalidBattle.Msg,
	}
)
