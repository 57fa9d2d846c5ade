// clienttest 包提供用于测试 ncloud 包的辅助方法。
package clienttest

import (
	"net/http"
	"net/http/httptest"

	"github.com/cmstar/go-ncloud/apigw"
	"github.com/labstack/echo/v4"
)

// GatewaySetup 用于设置伪造的网关。
type GatewaySetup struct {
	// Secrets 记录 access key 到 secret key 的映射，签名校验基于这张表。
	Secrets map[string]string

	// Handle 在签名校验通过后处理请求。为 nil 时返回一个默认的 JSON 报文。
	Handle echo.HandlerFunc
}

// NewGatewayServer 创建一个伪造的 API Gateway ，按 apigw 协议校验每个请求的签名。
//
// 校验方式和真实网关一致：用上送的时间戳和 access key ，对请求实际的 request-target
// 重新计算签名，并与上送的签名比对。校验不通过时返回 401 和网关风格的错误报文。
func NewGatewayServer(setup GatewaySetup) *httptest.Server {
	e := echo.New()
	e.Any("/*", func(c echo.Context) error {
		r := c.Request()
		timestamp := r.Header.Get(apigw.HttpHeaderTimestamp)
		accessKey := r.Header.Get(apigw.HttpHeaderAccessKey)
		sign := r.Header.Get(apigw.HttpHeaderSignature)

		secretKey, ok := setup.Secrets[accessKey]
		if !ok || sign == "" || sign != apigw.Sign(r.Method, r.URL.RequestURI(), timestamp, accessKey, secretKey) {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"error": map[string]any{
					"errorCode": "200",
					"message":   "Authentication Failed",
				},
			})
		}

		if setup.Handle != nil {
			return setup.Handle(c)
		}
		return c.JSON(http.StatusOK, map[string]any{"result": "ok"})
	})

	return httptest.NewServer(e)
}
