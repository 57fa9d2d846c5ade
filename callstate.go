package ncloud

import (
	"context"
	"net/http"
	"time"

	"github.com/cmstar/go-logx"
)

// CallState 用于记录一次 API 调用流程中的数据。每次调用使用一个新的 CallState 。
// 调用过程采用管道模式，每个环节从 CallState 获取所需数据，并将处理结果写回 CallState 。
// 当调用结束后， Response 字段应被填充（除非请求未能发出）。
type CallState struct {
	// Context 是当前调用的 context ，仅作用于网络传输环节。签名本身是纯计算，没有挂起点。
	Context context.Context

	// Client 当前的 ApiClient 。
	Client ApiClient

	// Request 是调用方给定的请求描述，各环节从这里读取原始输入。
	Request *ApiRequest

	// Logger 用于接收当前调用流程中需记录的日志。可以为 nil ，表示不记录日志。
	Logger logx.Logger

	// RawRequest 是将要发送的 HTTP 请求。 RequestBuilder 接口定义了初始化此字段的方法。
	RawRequest *http.Request

	// Timestamp 记录签名实际使用的时间戳，为十进制的毫秒级 UNIX 时间戳。
	// 它和 HTTP 头上送的值必须一致。 RequestSigner 接口定义了初始化此字段的方法。
	Timestamp string

	// AccessKey 记录签名实际使用的 access key 。密钥本身不会被记录。
	AccessKey string

	// StartAt 记录当前调用开始的时间，用于计算耗时。
	StartAt time.Time

	// RawResponse 是服务端返回的原始 HTTP 回执。 body 已被读取， RequestSender 将其存入
	// ResponseBody 字段。
	RawResponse *http.Response

	// ResponseBody 是服务端返回的 body 的完整数据。
	ResponseBody []byte

	// Response 记录解析后的返回结果。 ResponseDecoder 接口定义了初始化此字段的方法。
	Response *ApiResponse

	// Error 记录调用过程中的错误；没有错误时为 nil 。
	Error error

	// 输出日志时的日志级别。若为 0 ，则使用默认级别（由 ClientLogger 决定）。
	LogLevel logx.Level

	// LogMessage 用于记录各个环节中的日志信息，用于在 ClientLogger 中的输出。
	// 最终日志的输出由 ClientLogger 决定，这只是一个缓冲（ buffer ）。
	// key-value 对，与 logx.Logger.Log 的 keyValues 参数定义一致。
	LogMessage []any

	// customData 用于记录没有预定义的数据，即不在其他字段中体现的数据，由各环节自行决定。
	customData []struct{ k, v any }
}

// NewCallState 创建一个新的 CallState ，每次 API 调用应使用一个新的 CallState 。
// ctx 为 nil 时自动使用 context.Background() 。
func NewCallState(ctx context.Context, client ApiClient, request *ApiRequest) *CallState {
	if ctx == nil {
		ctx = context.Background()
	}

	return &CallState{
		Context: ctx,
		Client:  client,
		Request: request,
		StartAt: time.Now(),
	}
}

// MustHaveRequest checks the Request field, panics if the field is not initialized.
func (s *CallState) MustHaveRequest() {
	if s.Request == nil {
		PanicClientError(s, nil, "CallState.Request not initialized")
	}
}

// MustHaveRawRequest checks the RawRequest field, panics if the field is not initialized.
func (s *CallState) MustHaveRawRequest() {
	if s.RawRequest == nil {
		PanicClientError(s, nil, "CallState.RawRequest not initialized")
	}
}

// MustHaveRawResponse checks the RawResponse field, panics if the field is not initialized.
func (s *CallState) MustHaveRawResponse() {
	if s.RawResponse == nil {
		PanicClientError(s, nil, "CallState.RawResponse not initialized")
	}
}

// SetCustomData 在当前 CallState 中存储一个自定义的值。
// 原理和 context.WithValue 类似， key 必须是可比较的。
func (s *CallState) SetCustomData(key, value any) {
	s.customData = append(s.customData, struct{ k, v any }{key, value})
}

// GetCustomData 读取 SetCustomData 方法存放的值。返回一个 bool 值表示 key 是否存在。
func (s *CallState) GetCustomData(key any) (any, bool) {
	data := s.customData
	for i := 0; i < len(data); i++ {
		if data[i].k == key {
			return data[i].v, true
		}
	}
	return nil, false
}
