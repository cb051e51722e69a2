package errs

var (
	SystemError     = ErrorCode{Code: 509001, Msg: "系统错误"}
	PointsNotEnough = ErrorCode{Code: 509002, Msg: "积分不足"}
	UnknownType     = ErrorCode{Code: 509003, Msg: "未知的推广档位"}
	VideoNotFound   = ErrorCode{Code: 509004, Msg: "视频不存在"}
	NotOwner        = ErrorCode{Code: 509005, Msg: "只能推广自己的视频"}
	NoProduct       = ErrorCode{Code: 509006, Msg: "视频没有挂商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
