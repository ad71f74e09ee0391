package errs

var (
	SystemError  = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidJob   = ErrorCode{Code: 521002, Msg: "职位信息不合法"}
	Unauthorized = ErrorCode{Code: 521003, Msg: "无权操作该职位"}
	JobNotFound  = ErrorCode{Code: 521004, Msg: "职位不存在"}
	JobClosed    = ErrorCode{Code: 521005, Msg: "职位已关闭"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
