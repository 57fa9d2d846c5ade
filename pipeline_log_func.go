package ncloud

import "github.com/cmstar/go-logx"

// LogFunc 定义一个过程，此过程用于从 CallState 填充日志信息。
type LogFunc func(state *CallState)

// LogFuncPipeline 是 LogFunc 组成的管道，实现 ClientLogger 。
// 它是 LogSetupPipeline 的轻量版本，直接组合函数而不是接口。
//
// 在 ClientLogger.Log 时，依次执行每个 LogFunc ，并将得到的 CallState.LogMessage 输出到日志。
// 若 LogLevel 未被设置，默认使用 logx.LevelInfo 级别。
type LogFuncPipeline []LogFunc

var _ ClientLogger = (*LogFuncPipeline)(nil)

// NewLogFuncPipeline 返回一个 LogFuncPipeline 。
func NewLogFuncPipeline(fs ...LogFunc) LogFuncPipeline {
	return LogFuncPipeline(fs)
}

// Log implements [ClientLogger.Log].
func (p LogFuncPipeline) Log(state *CallState) {
	logger := state.Logger
	if logger == nil || len(p) == 0 {
		return
	}

	for _, f := range p {
		f(state)
	}

	lv := state.LogLevel
	if state.LogLevel == 0 {
		lv = logx.LevelInfo
	}

	logger.Log(lv, "", state.LogMessage...)
}
