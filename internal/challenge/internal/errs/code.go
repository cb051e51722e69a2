package errs

var (
	SystemError       = ErrorCode{Code: 511001, Msg: "系统错误"}
	ChallengeNotFound = ErrorCode{Code: 511002, Msg: "挑战不存在"}
	NotCompleted      = ErrorCode{Code: 511003, Msg: "挑战还没完成"}
	AlreadyClaimed    = ErrorCode{Code: 511004, Msg: "奖励已经领过了"}
	InvalidChallenge  = ErrorCode{Code: 511005, Msg: "挑战信息非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
