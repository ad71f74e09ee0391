package errs

var (
	SystemError  = ErrorCode{Code: 524001, Msg: "系统错误"}
	Unauthorized = ErrorCode{Code: 524002, Msg: "未登录或者角色未知"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
