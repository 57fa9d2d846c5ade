// ncloud 包定义一组抽象过程与辅助类型，用于向带签名校验的云服务 REST API 发起请求，如 NCP API Gateway 。
package ncloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
)

/*
当前文件包含客户端的基础接口定义和调用流程。
*/

// ApiClient 定义了一次 API 调用过程中的抽象环节。
// CreateInvokeFunc() 返回一个函数，基于 ApiClient 实现完整的调用过程。
//
// 各环节依次为： RequestBuilder 、 RequestSigner 、 RequestSender 、 ResponseDecoder ，
// 最后由 ClientLogger 输出日志。
type ApiClient interface {
	RequestBuilder
	RequestSigner
	RequestSender
	ResponseDecoder
	ClientLogger

	// Name 获取当前 ApiClient 的标识符。每个 ApiClient 应具有唯一的名称。
	// 名称可以是任意值，包括空字符串。但应尽量给定容易识别的名称。
	Name() string
}

// ApiClientWrapper 用于组装各个接口，以实现 ApiClient 。
// 各种 ApiClient 的实现中，可使用此类型作为脚手架，组装各个内嵌接口。
type ApiClientWrapper struct {
	RequestBuilder
	RequestSigner
	RequestSender
	ResponseDecoder
	ClientLogger

	// ClientName 是 ApiClient.Name() 的返回值。
	ClientName string
}

var _ ApiClient = (*ApiClientWrapper)(nil)

// Name 实现 ApiClient.Name() 。
func (w *ApiClientWrapper) Name() string {
	return w.ClientName
}

// RequestBuilder 用于构建待发送的 HTTP 请求。
type RequestBuilder interface {
	// BuildRequest 校验 CallState.Request ，将合并 query 后的请求构建为 http.Request ，
	// 填入 CallState.RawRequest 。
	// 若请求不合规，填写 CallState.Error ，跳过后续环节的执行。
	// 合并后的 query 即最终上送的 query ，签名和传输必须使用同一个串。
	BuildRequest(state *CallState)
}

// RequestSigner 用于对构建好的 HTTP 请求进行签名。
type RequestSigner interface {
	// SignRequest 获取凭证和时间戳，对 CallState.RawRequest 计算签名并附加相关的 HTTP 头。
	// 签名必须基于请求实际上送的 request-target ，两者逐字节一致。
	SignRequest(state *CallState)
}

// RequestSender 用于发送已签名的 HTTP 请求。
type RequestSender interface {
	// SendRequest 发送 CallState.RawRequest ，将结果填入 CallState.RawResponse 和
	// CallState.ResponseBody 。传输层的错误原样向上反馈，不做解读。
	SendRequest(state *CallState)
}

// ResponseDecoder 用于解析服务端返回的报文。
type ResponseDecoder interface {
	// DecodeResponse 解析 CallState.ResponseBody ，填写 CallState.Response 。
	// 服务端报告的业务错误填写到 CallState.Error 。
	DecodeResponse(state *CallState)
}

// ClientLogger 在一次调用结束后，生成日志。
type ClientLogger interface {
	// Log 根据 CallState 的内容生成日志，日志由 CallState.Logger 接收。
	// 若 CallState.Logger 为 nil ，则不生成日志。
	Log(state *CallState)
}

// InvokeFunc 表示一次完整的 API 调用。
// 返回的 *ApiResponse 在部分错误场景下也可能有值，比如服务端返回了可解析的错误报文。
type InvokeFunc func(ctx context.Context, request *ApiRequest) (*ApiResponse, error)

// CreateInvokeFunc 返回一个封装了给定的 ApiClient 的 InvokeFunc 。
//
// logFinder 用于获取 Logger ，该 Logger 会赋值给 CallState.Logger 。可为 nil 表示不记录日志。
// 每次调用的日志名称即 ApiClient.Name() 。
func CreateInvokeFunc(client ApiClient, logFinder logx.LogFinder) InvokeFunc {
	return func(ctx context.Context, request *ApiRequest) (*ApiResponse, error) {
		state := NewCallState(ctx, client, request)

		if logFinder != nil {
			state.Logger = logFinder.Find(client.Name())
		}

		// 把比较可能 panic 的步骤抽出来，添加一个 defer 捕获错误并填到 state.Error 上，
		// 使 panic 后日志仍可正常输出、错误以 error 形式返回给调用方。
		invoke(state, client)

		client.Log(state)

		return state.Response, state.Error
	}
}

func invoke(state *CallState, client ApiClient) {
	defer invokePanic(state)

	client.BuildRequest(state)
	if state.Error != nil {
		return
	}

	client.SignRequest(state)
	if state.Error != nil {
		return
	}

	client.SendRequest(state)
	if state.Error != nil {
		return
	}

	client.DecodeResponse(state)
}

func invokePanic(state *CallState) {
	r := recover()
	if r == nil {
		return
	}

	name := ""
	if state.Request != nil {
		name = state.Request.Method + " " + state.Request.Path
	}

	// 尽量保留调用栈信息，如果没有，就放一个上去。
	switch v := r.(type) {
	case errx.StackfulError: // 含 BizError 。
		state.Error = v
	case error:
		state.Error = errx.Wrap(name, v)
	case string:
		state.Error = errx.Wrap(name, errors.New(v))
	default:
		// panic 的不是 error 和字符串也应该是个能转成字符串的东西。
		e := fmt.Errorf("%v", v)
		state.Error = errx.Wrap(name, e)
	}
}
