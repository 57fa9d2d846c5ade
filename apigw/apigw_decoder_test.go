package apigw

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-ncloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("abc", 0))

	// 截断不切开多字节字符。“中”占 3 字节。
	assert.Equal(t, "a", truncate("a中文", 3))
	assert.Equal(t, "a中", truncate("a中文", 4))
	assert.Equal(t, "a中", truncate("a中文", 6))
	assert.Equal(t, "a中文", truncate("a中文", 7))
}

func TestDecodeResponse_errorFallback(t *testing.T) {
	newState := func(statusCode int, body string) *ncloud.CallState {
		state := ncloud.NewCallState(context.Background(), nil, &ncloud.ApiRequest{
			Method: ncloud.MethodGet,
			Path:   "/a",
		})
		state.RawResponse = &http.Response{StatusCode: statusCode}
		state.ResponseBody = []byte(body)
		return state
	}
	decoder := NewApiGatewayResponseDecoder()

	t.Run("NonJsonBody", func(t *testing.T) {
		state := newState(http.StatusBadGateway, "<html>oops</html>")
		decoder.DecodeResponse(state)

		require.NotNil(t, state.Response.Error)
		assert.Equal(t, "502", state.Response.Error.ErrorCode)
		assert.Equal(t, "<html>oops</html>", state.Response.Error.Message)

		var bizErr errx.BizError
		require.ErrorAs(t, state.Error, &bizErr)
		assert.Equal(t, http.StatusBadGateway, bizErr.Code())
	})

	t.Run("LongMultibyteBody", func(t *testing.T) {
		state := newState(http.StatusBadGateway, strings.Repeat("错", 100))
		decoder.DecodeResponse(state)

		// 截取的片段必须仍是合法的 UTF-8 。
		msg := state.Response.Error.Message
		assert.LessOrEqual(t, len(msg), 256)
		assert.True(t, utf8.ValidString(msg))
	})
}
