package ncloud

import (
	"errors"
	"reflect"

	"github.com/cmstar/go-conv"
)

const (
	// ContentTypeJson 对应 Content-Type: application/json 的值。
	ContentTypeJson = "application/json"

	// ContentTypePlainText 对应 Content-Type: text/plain 的值。
	ContentTypePlainText = "text/plain"
)

const (
	// HttpHeaderContentType 对应 HTTP 头中的 Content-Type 字段。
	HttpHeaderContentType = "Content-Type"
)

// ErrorDetail 对应网关错误报文的 error 节，格式为：
//
//	{"error": {"errorCode": "200", "message": "Authentication Failed", "details": "..."}}
type ErrorDetail struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
}

// ApiResponse 用于表示一次调用返回的数据。
type ApiResponse struct {
	// StatusCode 是 HTTP 状态码。
	StatusCode int

	// Data 记录返回的数据本体，为 JSON 反序列化的原始结果（ map/slice/基础类型）。
	// 需要具体类型时，使用 ConvertData() 转换。
	Data any

	// Error 在服务端报告错误时非 nil ，记录错误报文的内容。
	Error *ErrorDetail
}

// OK 判断当前回执是否表示一次成功的调用。
func (r *ApiResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.Error == nil
}

// ConvertData 将 Data 转换到给定的值上。 output 必须是非 nil 的指针。
// 转换使用 Conv 变量，字段以大小写不敏感的方式匹配。
func (r *ApiResponse) ConvertData(output any) error {
	outVal := reflect.ValueOf(output)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return errors.New("the output must be a non-nil pointer")
	}

	v, err := Conv.ConvertType(r.Data, outVal.Type().Elem())
	if err != nil {
		return err
	}

	outVal.Elem().Set(reflect.ValueOf(v))
	return nil
}

// Conv 是用于处理返回数据的 conv.Conv 实例，使用大小写不敏感（case-insensitive）的方式处理字段。
var Conv = conv.Conv{
	Conf: conv.Config{
		FieldMatcherCreator: &conv.SimpleMatcherCreator{
			Conf: conv.SimpleMatcherConfig{
				CaseInsensitive: true,
			},
		},
	},
}
