package ncloud

import (
	"fmt"
	"reflect"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
)

/*
当前文件提供 ncloud 的相关错误类型及处理错误的方法。
*/

// withinStateError 描述一次调用的处理过程中的错误，用作其他错误的内嵌结构。
type withinStateError struct {
	errx.ErrorCause

	State   *CallState // State 记录当前的调用状态。
	Message string     // Message 记录错误的描述信息。
}

var _ error = (*withinStateError)(nil)

// Error 实现 error 接口。
func (e withinStateError) Error() string {
	return e.Message
}

// ClientError 用于表示调用过程中的内部错误，这些错误通常表示代码存在问题（如编码 bug）。
// 这些问题不能在程序生命周期中自动解决，通常使用 panic 中断流程。
type ClientError struct {
	withinStateError
}

// CreateClientError 创建一个 ClientError 。
// message 和 args 指定描述信息，使用 fmt.Sprintf() 格式化。 cause 是引起此错误的错误，可以为 nil 。
// message 会体现在 ClientError.Error() ，格式为：
//
//	message:: cause.Error()
func CreateClientError(state *CallState, cause error, message string, args ...any) ClientError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	if cause != nil {
		if message != "" {
			message += ":: "
		}
		message += cause.Error()
	}

	e := ClientError{
		withinStateError{
			ErrorCause: errx.ErrorCause{Err: cause},
			State:      state,
			Message:    message,
		},
	}
	return e
}

// PanicClientError 使用 CreateClientError 创建 ClientError ，并直接 panic 。
// 当调用流程遇见不应该发生（如编码 bug）的异常情况时，可使用此方法中断处理过程。
func PanicClientError(state *CallState, cause error, message string, args ...any) {
	e := CreateClientError(state, cause, message, args...)
	panic(e)
}

// InvalidRequestError 记录一个不合规的请求，例如路径不以“/”开头、 GET 请求携带 body 等。
// 这些校验发生在签名之前，不合规的请求不会被签名和发送，也不会被静默修正。
type InvalidRequestError struct {
	withinStateError
}

// CreateInvalidRequestError 创建一个 InvalidRequestError 。
// message 和 args 指定其消息，使用 fmt.Sprintf() 格式化。更具体的错误可以放在 cause 上。
func CreateInvalidRequestError(state *CallState, cause error, message string, args ...any) InvalidRequestError {
	message = fmt.Sprintf(message, args...)
	e := InvalidRequestError{
		withinStateError{
			ErrorCause: errx.ErrorCause{Err: cause},
			State:      state,
			Message:    message,
		},
	}
	return e
}

// DescribeError 根据给定的错误，返回错误的日志级别、名称和错误描述。如果 err 为 nil ，返回 logx.LevelInfo 和空字符串。
// 此方法可用于搭配 ClientLogger.Log() 输出带有错误描述的日志。
//
// 描述信息使用 errx.Describe() 获取。
func DescribeError(err error) (logLevel logx.Level, errTypeName, errDescription string) {
	if err == nil {
		return logx.LevelInfo, "", ""
	}

	errTypeName = getErrTypeName(err)
	errDescription = errx.Describe(err)

	logLevel = logx.LevelError
	switch err.(type) {
	case errx.BizError:
		// 服务端报告的业务错误，属于调用方和远端之间的事，不是本地故障。
		logLevel = logx.LevelWarn
	case InvalidRequestError:
		logLevel = logx.LevelError
	case ClientError:
		// 属于代码不能正常执行的严重问题。
		logLevel = logx.LevelFatal
	}

	return
}

func getErrTypeName(err error) string {
	// 取 error 内在的实际类型的名称。
	typ := reflect.TypeOf(err)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	name := typ.Name()

	// 如果是个公开类型（首字母大写），直接用其名称。
	if len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' {
		return name
	}

	// 非公开的错误，如果是几个预定义且常见的，返回其接口名称。
	if _, ok := err.(errx.BizError); ok {
		return "BizError"
	}
	if _, ok := err.(errx.StackfulError); ok {
		return "StackfulError"
	}
	return name
}
