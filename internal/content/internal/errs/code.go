package errs

var (
	SystemError   = ErrorCode{Code: 507001, Msg: "系统错误"}
	VideoNotFound = ErrorCode{Code: 507002, Msg: "视频不存在"}
	InvalidVideo  = ErrorCode{Code: 507003, Msg: "视频信息非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
