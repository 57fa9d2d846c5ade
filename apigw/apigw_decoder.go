package apigw

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-ncloud"
)

// apiGatewayResponseDecoder 提供 ncloud.ResponseDecoder 的 API Gateway 实现。
type apiGatewayResponseDecoder struct{}

// NewApiGatewayResponseDecoder 返回用于 API Gateway 协议的 ncloud.ResponseDecoder 实现。
func NewApiGatewayResponseDecoder() ncloud.ResponseDecoder {
	return apiGatewayResponseDecoder{}
}

// DecodeResponse implements [ncloud.ResponseDecoder.DecodeResponse].
//
// 网关的回执约定为 JSON 。 2xx 的 body 反序列化后放到 Response.Data ；非 2xx 的 body
// 尝试按错误报文解析，并以 errx.BizError 报告给调用方，错误码不做进一步解读。
func (apiGatewayResponseDecoder) DecodeResponse(state *ncloud.CallState) {
	state.MustHaveRawResponse()

	response := &ncloud.ApiResponse{
		StatusCode: state.RawResponse.StatusCode,
	}
	state.Response = response

	body := state.ResponseBody
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if len(body) == 0 {
			return
		}

		if err := json.Unmarshal(body, &response.Data); err != nil {
			state.Error = ncloud.CreateClientError(state, err, "unexpected non-JSON response")
		}
		return
	}

	// 错误报文，格式为 {"error": {...}} 。解析不出来时保留状态码和 body 片段。
	var envelope struct {
		Error *ncloud.ErrorDetail `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
		response.Error = envelope.Error
	} else {
		response.Error = &ncloud.ErrorDetail{
			ErrorCode: strconv.Itoa(response.StatusCode),
			Message:   truncate(string(body), 256),
		}
	}

	state.Error = errx.NewBizError(response.StatusCode, response.Error.Message, nil)
}

// truncate 截断超长的字符串，截断位置回退到完整的 UTF-8 字符边界上。
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
