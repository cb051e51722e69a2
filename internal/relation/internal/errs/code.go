package errs

var (
	SystemError = ErrorCode{Code: 514001, Msg: "系统错误"}
	SelfFollow  = ErrorCode{Code: 514002, Msg: "不能关注自己"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
