package ncloud

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/*
当前文件包含请求的数据模型，以及凭证、时钟两个注入点的定义。
*/

// 受支持的 HTTP 方法。
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

// ApiRequest 描述一次 API 调用的输入。它是纯数据，构建和签名由 ApiClient 的各环节完成。
type ApiRequest struct {
	// Method 是 HTTP 请求的方法，限定为 GET/POST/PUT/PATCH/DELETE 。
	Method string

	// Path 是请求的路径，必须以“/”开头。可以直接带有 query string ，如“/a/b?x=1”。
	Path string

	// Query 是显式给定的 query 参数表，按给定顺序处理。
	// 与 Path 中内嵌的同名参数冲突时，以这里的值为准，详见 MergeQuery 。
	Query []Param

	// Body 是请求的 body ，将被序列化为 JSON 上送。没有 body 时为 nil 。
	// 仅 POST/PUT/PATCH 请求可以携带 body 。
	Body any
}

// Validate 校验当前请求的基本合法性。这些校验发生在签名之前，不合规的请求不会被签名。
func (r *ApiRequest) Validate() error {
	switch r.Method {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
	default:
		return fmt.Errorf("unsupported method: %q", r.Method)
	}

	if r.Path == "" {
		return fmt.Errorf("the path must not be empty")
	}

	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("the path must start with '/': %q", r.Path)
	}

	if r.Body != nil {
		switch r.Method {
		case MethodPost, MethodPut, MethodPatch:
		default:
			return fmt.Errorf("the %s request must not have a body", r.Method)
		}
	}

	return nil
}

// Credential 是一组配对的访问凭证。 AccessKey 用于标识调用者的身份， SecretKey 用于生成签名。
// SecretKey 不应被日志输出，仅在单次签名计算期间被持有。
type Credential struct {
	AccessKey string
	SecretKey string
}

// CredentialProvider 用于获取当前调用所使用的访问凭证。
type CredentialProvider interface {
	// GetCredential 获取访问凭证。
	// 若凭证不可用，返回对应的错误。
	GetCredential() (Credential, error)
}

type credentialProviderWrapper struct {
	f func() (Credential, error)
}

func (x credentialProviderWrapper) GetCredential() (Credential, error) {
	return x.f()
}

// CredentialProviderFunc 将给定的函数包装为 CredentialProvider 。
func CredentialProviderFunc(f func() (Credential, error)) CredentialProvider {
	return credentialProviderWrapper{f}
}

// StaticCredential 返回一个总是给出固定凭证的 CredentialProvider 。
func StaticCredential(accessKey, secretKey string) CredentialProvider {
	return CredentialProviderFunc(func() (Credential, error) {
		return Credential{AccessKey: accessKey, SecretKey: secretKey}, nil
	})
}

// Clock 是签名所使用的时间源。签名算法本身不读取环境时间，时间总是由外部注入，以保持可测试性。
type Clock interface {
	// Now 返回当前时间。
	Now() time.Time
}

type clockWrapper struct {
	f func() time.Time
}

func (x clockWrapper) Now() time.Time {
	return x.f()
}

// ClockFunc 将给定的函数包装为 Clock 。
func ClockFunc(f func() time.Time) Clock {
	return clockWrapper{f}
}

// SystemClock 读取系统时间的 Clock 。
var SystemClock Clock = ClockFunc(time.Now)

// FormatTimestamp 将给定的时间格式化为签名所使用的时间戳：十进制的毫秒级 UNIX 时间戳。
func FormatTimestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
