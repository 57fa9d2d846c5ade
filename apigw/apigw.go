// apigw 实现 NCP API Gateway 的请求签名协议，基于 ncloud 包的调用管道。
package apigw

import (
	"net/http"

	"github.com/cmstar/go-ncloud"
)

// Config 是创建 API Gateway 客户端的配置。
type Config struct {
	// Endpoint 是网关的地址，含 scheme 和 host ，不含路径，如“https://ncloud.apigw.ntruss.com”。
	// 必须给定。末尾的“/”会被去掉。
	Endpoint string

	// Credentials 提供签名所使用的访问凭证。必须给定。
	Credentials ncloud.CredentialProvider

	// Clock 是签名所使用的时间源。为 nil 时使用 ncloud.SystemClock 。
	// 测试时可注入固定时钟以获得可断言的签名。
	Clock ncloud.Clock

	// HttpClient 用于发送请求。为 nil 时使用 http.DefaultClient 。
	HttpClient *http.Client
}

// NewApiGatewayClient 创建 API Gateway 协议的 ncloud.ApiClient 。
// name 是客户端的标识符，也是日志名称。配置缺失必要项时 panic 。
func NewApiGatewayClient(name string, conf Config) *ncloud.ApiClientWrapper {
	if conf.Endpoint == "" {
		panic("apigw: the endpoint must be provided")
	}
	if conf.Credentials == nil {
		panic("apigw: the credential provider must be provided")
	}

	clock := conf.Clock
	if clock == nil {
		clock = ncloud.SystemClock
	}

	httpClient := conf.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ncloud.ApiClientWrapper{
		ClientName:      name,
		RequestBuilder:  NewApiGatewayRequestBuilder(conf.Endpoint),
		RequestSigner:   NewApiGatewayRequestSigner(conf.Credentials, clock),
		RequestSender:   NewApiGatewayRequestSender(httpClient),
		ResponseDecoder: NewApiGatewayResponseDecoder(),
		ClientLogger:    NewApiGatewayLogger(),
	}
}
