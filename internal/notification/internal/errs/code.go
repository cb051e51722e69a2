package errs

var (
	SystemError          = ErrorCode{Code: 515001, Msg: "系统错误"}
	NotificationNotFound = ErrorCode{Code: 515002, Msg: "通知不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
