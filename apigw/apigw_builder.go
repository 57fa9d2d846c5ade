package apigw

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cmstar/go-ncloud"
)

// apiGatewayRequestBuilder 提供 ncloud.RequestBuilder 的 API Gateway 实现。
type apiGatewayRequestBuilder struct {
	endpoint string
}

// NewApiGatewayRequestBuilder 返回用于 API Gateway 协议的 ncloud.RequestBuilder 实现。
// endpoint 是网关的地址，含 scheme 和 host ，不含路径。
func NewApiGatewayRequestBuilder(endpoint string) ncloud.RequestBuilder {
	return &apiGatewayRequestBuilder{
		endpoint: strings.TrimSuffix(endpoint, "/"),
	}
}

// BuildRequest implements [ncloud.RequestBuilder.BuildRequest].
//
// 校验在签名之前完成，不合规的请求以 InvalidRequestError 报告，不会被静默修正。
func (b *apiGatewayRequestBuilder) BuildRequest(state *ncloud.CallState) {
	state.MustHaveRequest()
	request := state.Request

	if err := request.Validate(); err != nil {
		state.Error = ncloud.CreateInvalidRequestError(state, err, "invalid request")
		return
	}

	// 合并后的 path+query 即最终上送的 request-target ，后续签名直接取它，不再改写。
	pathWithQuery := ncloud.MergeQuery(request.Path, request.Query)

	var body io.Reader
	if request.Body != nil {
		data, err := json.Marshal(request.Body)
		if err != nil {
			state.Error = ncloud.CreateInvalidRequestError(state, err, "marshal request body")
			return
		}
		body = bytes.NewReader(data)
	}

	httpRequest, err := http.NewRequestWithContext(state.Context, request.Method, b.endpoint+pathWithQuery, body)
	if err != nil {
		state.Error = ncloud.CreateInvalidRequestError(state, err, "build request")
		return
	}

	if body != nil {
		httpRequest.Header.Set(ncloud.HttpHeaderContentType, ncloud.ContentTypeJson)
	}

	state.RawRequest = httpRequest
}
