package errs

var (
	SystemError     = ErrorCode{Code: 510001, Msg: "系统错误"}
	BattleNotFound  = ErrorCode{Code: 510002, Msg: "对战不存在"}
	AlreadyVoted    = ErrorCode{Code: 510003, Msg: "已经投过票了"}
	BattleFinished  = ErrorCode{Code: 510004, Msg: "对战已结束"}
	PointsNotEnough = ErrorCode{Code: 510005, Msg: "积分不足"}
	InvalidVote     = ErrorCode{Code: 510006, Msg: "投票对象不在对战里"}
	InvalidBattle   = ErrorCode{Code: 510007, Msg: "对战信息非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
