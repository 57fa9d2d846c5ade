package apigw

import (
	"io"
	"net/http"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-ncloud"
)

// apiGatewayRequestSender 提供 ncloud.RequestSender 的 API Gateway 实现。
type apiGatewayRequestSender struct {
	httpClient *http.Client
}

// NewApiGatewayRequestSender 返回用于 API Gateway 协议的 ncloud.RequestSender 实现。
func NewApiGatewayRequestSender(httpClient *http.Client) ncloud.RequestSender {
	return &apiGatewayRequestSender{
		httpClient: httpClient,
	}
}

// SendRequest implements [ncloud.RequestSender.SendRequest].
//
// 传输层的错误原样向上反馈，不做解读；取消和超时通过 CallState.Context 作用在这里。
func (s *apiGatewayRequestSender) SendRequest(state *ncloud.CallState) {
	state.MustHaveRawRequest()

	response, err := s.httpClient.Do(state.RawRequest)
	if err != nil {
		state.Error = errx.Wrap("apigwSender: send request", err)
		return
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		state.Error = errx.Wrap("apigwSender: read response body", err)
		return
	}

	state.RawResponse = response
	state.ResponseBody = body
}
