// Package logsetup 提供一组预定义的 [ncloud.LogSetup] ，以便快速实现 [ncloud.ClientLogger] 。
package logsetup

import (
	"time"

	"github.com/cmstar/go-ncloud"
)

// Method 输出请求的 HTTP 方法。
//
// 输出字段为： Method 。
//
// 这是一个单例。
var Method = method{}

type method struct{}

var _ ncloud.LogSetup = (*method)(nil)

func (method) Setup(state *ncloud.CallState) {
	if state.RawRequest != nil {
		state.LogMessage = append(state.LogMessage, "Method", state.RawRequest.Method)
		return
	}

	// 请求没构建出来时，尽量从原始输入里取。
	if state.Request != nil {
		state.LogMessage = append(state.LogMessage, "Method", state.Request.Method)
	}
}

// URL 输出请求的完整 URL 。
//
// 输出字段为： URL 。
//
// 这是一个单例。
var URL = urlSetup{}

type urlSetup struct{}

var _ ncloud.LogSetup = (*urlSetup)(nil)

func (urlSetup) Setup(state *ncloud.CallState) {
	if state.RawRequest == nil {
		return
	}
	state.LogMessage = append(state.LogMessage, "URL", state.RawRequest.URL.String())
}

// Status 输出回执的 HTTP 状态码。请求未发出时不输出。
//
// 输出字段为： Status 。
//
// 这是一个单例。
var Status = status{}

type status struct{}

var _ ncloud.LogSetup = (*status)(nil)

func (status) Setup(state *ncloud.CallState) {
	if state.RawResponse == nil {
		return
	}
	state.LogMessage = append(state.LogMessage, "Status", state.RawResponse.StatusCode)
}

// Elapsed 输出从 CallState 创建到日志输出时的耗时。
//
// 输出字段为： Elapsed 。
//
// 这是一个单例。
var Elapsed = elapsed{}

type elapsed struct{}

var _ ncloud.LogSetup = (*elapsed)(nil)

func (elapsed) Setup(state *ncloud.CallState) {
	state.LogMessage = append(state.LogMessage, "Elapsed", time.Since(state.StartAt).String())
}

// Error 根据当前的错误信息，判断错误的级别，并输出错误的描述信息。
//
// 输出字段为： ErrorType/Error 。
//
// 这是一个单例。
var Error = err{}

type err struct{}

var _ ncloud.LogSetup = (*err)(nil)

func (err) Setup(state *ncloud.CallState) {
	if state.Error == nil {
		return
	}

	logLevel, errTypeName, errDescription := ncloud.DescribeError(state.Error)

	state.LogLevel = logLevel
	state.LogMessage = append(state.LogMessage,
		"ErrorType", errTypeName,
		"Error", errDescription,
	)
}
