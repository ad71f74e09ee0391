package errs

var (
	SystemError = ErrorCode{Code: 522001, Msg: "系统错误"}
	// InvalidAttachment 类型不支持，大小超限，或者是空文件
	InvalidAttachment = ErrorCode{Code: 522002, Msg: "附件不合法"}
	Unauthorized      = ErrorCode{Code: 522003, Msg: "无权操作该附件"}
	NotFound          = ErrorCode{Code: 522004, Msg: "附件不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
