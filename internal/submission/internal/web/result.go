package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirehub/internal/submission/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
	submissionNotFoundResult = ginx.Result{
		Code: errs.SubmissionNotFound.Code,
		Msg:  errs.SubmissionNotFound.Msg,
	}
	conflictResult = ginx.Result{
		Code: errs.Conflict.Code,
		Msg:  errs.Conflict.Msg,
	}
)
