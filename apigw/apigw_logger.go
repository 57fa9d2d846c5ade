package apigw

import (
	"github.com/cmstar/go-ncloud"
	"github.com/cmstar/go-ncloud/logsetup"
)

// LogSignatureInfo 实现 [ncloud.LogSetup] ，用于记录签名所使用的 access key 和时间戳。
// secret key 和签名值不会被输出。
//
// 这是一个单例。
var LogSignatureInfo = logSignatureInfo{}

type logSignatureInfo struct{}

var _ ncloud.LogSetup = (*logSignatureInfo)(nil)

func (logSignatureInfo) Setup(state *ncloud.CallState) {
	if state.AccessKey == "" {
		return
	}

	state.LogMessage = append(state.LogMessage,
		"AccessKey", state.AccessKey,
		"Timestamp", state.Timestamp,
	)
}

// NewApiGatewayLogger 返回用于 API Gateway 协议的 [ncloud.ClientLogger] 实现。
func NewApiGatewayLogger() ncloud.LogSetupPipeline {
	return ncloud.NewLogSetupPipeline(
		logsetup.Method,
		logsetup.URL,
		logsetup.Status,
		logsetup.Elapsed,
		LogSignatureInfo,
		logsetup.Error,
	)
}
