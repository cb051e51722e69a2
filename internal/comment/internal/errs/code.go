package errs

var (
	SystemError     = ErrorCode{Code: 513001, Msg: "系统错误"}
	VideoNotFound   = ErrorCode{Code: 513002, Msg: "视频不存在"}
	CommentNotFound = ErrorCode{Code: 513003, Msg: "评论不存在"}
	InvalidComment  = ErrorCode{Code: 513004, Msg: "评论内容非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
