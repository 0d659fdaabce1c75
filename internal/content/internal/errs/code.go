package errs

var (
	SystemError      = ErrorCode{Code: 601001, Msg: "系统错误"}
	ContentNotFound  = ErrorCode{Code: 601002, Msg: "内容不存在"}
	ContentMalformed = ErrorCode{Code: 601003, Msg: "内容加载失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
