package errs

var (
	SystemError        = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidCoordinates = ErrorCode{Code: 512002, Msg: "经纬度非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
