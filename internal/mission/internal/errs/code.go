package errs

var (
	SystemError           = ErrorCode{Code: 602001, Msg: "系统错误"}
	MissionNotFound       = ErrorCode{Code: 602002, Msg: "任务不存在"}
	ApplicationDuplicated = ErrorCode{Code: 602003, Msg: "你已经申请过这个任务了"}
	InvalidApplication    = ErrorCode{Code: 602004, Msg: "申请信息不合法"}
	ApplicationNotFound   = ErrorCode{Code: 602005, Msg: "申请不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
