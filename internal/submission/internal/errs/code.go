package errs

var (
	SystemError        = ErrorCode{Code: 523001, Msg: "系统错误"}
	Unauthorized       = ErrorCode{Code: 523002, Msg: "无权操作该投递"}
	SubmissionNotFound = ErrorCode{Code: 523003, Msg: "投递不存在"}
	JobNotFound        = ErrorCode{Code: 523004, Msg: "职位不存在"}
	JobClosed          = ErrorCode{Code: 523005, Msg: "职位已关闭"}
	IllegalTransition  = ErrorCode{Code: 523006, Msg: "不允许的状态流转"}
	InvalidAttachment  = ErrorCode{Code: 523007, Msg: "简历附件不合法"}
	Conflict           = ErrorCode{Code: 523008, Msg: "投递已被修改，请刷新后重试"}
	InvalidStatus      = ErrorCode{Code: 523009, Msg: "未知的投递状态"}
	TerminalSubmission = ErrorCode{Code: 523010, Msg: "投递已结束"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
