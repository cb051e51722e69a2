package errs

var (
	SystemError      = ErrorCode{Code: 508001, Msg: "系统错误"}
	DuplicatedAction = ErrorCode{Code: 508002, Msg: "不能重复操作"}
	TargetNotFound   = ErrorCode{Code: 508003, Msg: "互动对象不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
