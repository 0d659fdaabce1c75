package errs

var (
	SystemError   = ErrorCode{Code: 603001, Msg: "系统错误"}
	InvalidEmail  = ErrorCode{Code: 603002, Msg: "邮箱格式不正确"}
	AlreadyJoined = ErrorCode{Code: 603003, Msg: "你已经在等待列表里了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
