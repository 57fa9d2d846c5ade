package apigw

import (
	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-ncloud"
)

// apiGatewayRequestSigner 提供 ncloud.RequestSigner 的 API Gateway 实现。
type apiGatewayRequestSigner struct {
	credentials ncloud.CredentialProvider
	clock       ncloud.Clock
}

// NewApiGatewayRequestSigner 返回用于 API Gateway 协议的 ncloud.RequestSigner 实现。
func NewApiGatewayRequestSigner(credentials ncloud.CredentialProvider, clock ncloud.Clock) ncloud.RequestSigner {
	return &apiGatewayRequestSigner{
		credentials: credentials,
		clock:       clock,
	}
}

// SignRequest implements [ncloud.RequestSigner.SignRequest].
//
// 凭证仅在本次签名计算期间被持有， secret key 不会被写到 CallState 上。
func (s *apiGatewayRequestSigner) SignRequest(state *ncloud.CallState) {
	state.MustHaveRawRequest()

	credential, err := s.credentials.GetCredential()
	if err != nil {
		state.Error = errx.Wrap("apigwSigner: get credential", err)
		return
	}

	if credential.AccessKey == "" || credential.SecretKey == "" {
		state.Error = ncloud.CreateInvalidRequestError(state, nil, "missing the access key or the secret key")
		return
	}

	timestamp := ncloud.FormatTimestamp(s.clock.Now())
	AppendSign(state.RawRequest, credential.AccessKey, credential.SecretKey, timestamp)

	state.Timestamp = timestamp
	state.AccessKey = credential.AccessKey
}
