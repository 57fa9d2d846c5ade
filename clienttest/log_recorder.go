package clienttest

import (
	"fmt"

	"github.com/cmstar/go-logx"
)

// LogEntry 记录一条日志。键值对被整理成 map ，值使用 fmt.Sprintf("%v") 格式化。
type LogEntry struct {
	Level   logx.Level
	Message string
	Fields  map[string]string
}

// LogRecorder 实现 logx.Logger ，将全部日志记录下来，供测试断言。
// 非并发安全，仅用于测试。
type LogRecorder struct {
	entries []LogEntry
}

var _ logx.Logger = (*LogRecorder)(nil)

// NewLogRecorder 创建一个 LogRecorder 的新实例。
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Log 实现 Logger.Log() 。
func (l *LogRecorder) Log(level logx.Level, message string, keyValues ...any) error {
	entry := LogEntry{
		Level:   level,
		Message: message,
		Fields:  make(map[string]string),
	}

	length := len(keyValues)
	for i := 0; i < length-1; i += 2 {
		k := fmt.Sprintf("%v", keyValues[i])
		v := fmt.Sprintf("%v", keyValues[i+1])
		entry.Fields[k] = v
	}

	// 键值对不成对时，最后一个值挂在一个固定的键上，便于发现问题。
	if length%2 != 0 {
		entry.Fields["UNKNOWN"] = fmt.Sprintf("%v", keyValues[length-1])
	}

	l.entries = append(l.entries, entry)
	return nil
}

// LogFn 实现 Logger.LogFn() 。
func (l *LogRecorder) LogFn(level logx.Level, messageFactory func() (string, []any)) error {
	m, kv := messageFactory()
	return l.Log(level, m, kv...)
}

// Entries 返回当前记录的全部日志。
func (l *LogRecorder) Entries() []LogEntry {
	return l.entries
}

// Last 返回最后一条日志。没有日志时 ok=false 。
func (l *LogRecorder) Last() (entry LogEntry, ok bool) {
	if len(l.entries) == 0 {
		return LogEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
