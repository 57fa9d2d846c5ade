package apigw

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

/* 当前文件提供签名算法的实现。 */

const (
	// HttpHeaderTimestamp 上送签名所使用的时间戳，为十进制的毫秒级 UNIX 时间戳。
	HttpHeaderTimestamp = "x-ncp-apigw-timestamp"

	// HttpHeaderAccessKey 上送调用者的 access key 。
	HttpHeaderAccessKey = "x-ncp-iam-access-key"

	// HttpHeaderSignature 上送签名，即 Sign() 的结果。
	HttpHeaderSignature = "x-ncp-apigw-signature-v2"
)

// BuildSigningMessage 构建待签名串，格式为：
//
//	{METHOD} {PATH_WITH_QUERY}\n{TIMESTAMP}\n{ACCESS_KEY}
//
// 分隔符是字面的换行符（0x0A），末尾没有换行符。
// pathWithQuery 必须和请求实际上送的 request-target 逐字节一致。
func BuildSigningMessage(method, pathWithQuery, timestamp, accessKey string) string {
	b := new(strings.Builder)
	b.WriteString(method)
	b.WriteByte(' ')
	b.WriteString(pathWithQuery)
	b.WriteByte('\n')
	b.WriteString(timestamp)
	b.WriteByte('\n')
	b.WriteString(accessKey)
	return b.String()
}

// Sign 计算给定请求要素的签名。
//   - method HTTP 请求的方法，大写，如 GET/POST 。
//   - pathWithQuery 请求的 request-target ，以“/”开头，含 query string （如果有）。
//   - timestamp 毫秒级 UNIX 时间戳，十进制数字串，需和 HttpHeaderTimestamp 头的值一样。
//   - accessKey 调用者的 access key ，需和 HttpHeaderAccessKey 头的值一样。
//   - secretKey HMAC-SHA256 的密钥，使用 UTF-8 字符集。
//
// 返回标准 base64 （含补位）编码的签名。这是一个纯函数，没有内部错误分支。
func Sign(method, pathWithQuery, timestamp, accessKey, secretKey string) string {
	message := BuildSigningMessage(method, pathWithQuery, timestamp, accessKey)
	return HmacSha256Base64([]byte(secretKey), []byte(message))
}

// HmacSha256Base64 计算 hmac-sha256 ，返回标准 base64 （含补位）格式。
func HmacSha256Base64(secret, data []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write(data)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// AppendSign 计算请求的签名，并将签名相关的三个 HTTP 头赋值到请求上。返回签名的值。
//
// 签名基于 r.URL.RequestURI() ，即 HTTP 请求行实际上送的 request-target ，
// 保证签名的串和传输的串逐字节一致。
//   - r 需要计算签名的请求。
//   - accessKey 对应 HttpHeaderAccessKey 头的值。
//   - secretKey HMAC-SHA256 的密钥，使用 UTF-8 字符集。
//   - timestamp 毫秒级 UNIX 时间戳，对应 HttpHeaderTimestamp 头的值。
func AppendSign(r *http.Request, accessKey, secretKey, timestamp string) string {
	sign := Sign(r.Method, r.URL.RequestURI(), timestamp, accessKey, secretKey)

	r.Header.Set(HttpHeaderTimestamp, timestamp)
	r.Header.Set(HttpHeaderAccessKey, accessKey)
	r.Header.Set(HttpHeaderSignature, sign)

	return sign
}
