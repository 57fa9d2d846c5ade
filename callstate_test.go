package ncloud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCallState(t *testing.T) {
	t.Run("NilContext", func(t *testing.T) {
		s := NewCallState(nil, nil, nil)
		assert.Equal(t, context.Background(), s.Context)
		assert.False(t, s.StartAt.IsZero())
	})

	t.Run("GivenContext", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		s := NewCallState(ctx, nil, &ApiRequest{})
		assert.Equal(t, "v", s.Context.Value(key{}))
	})
}

func TestCallState_MustHave(t *testing.T) {
	mustPanic := func(t *testing.T, f func()) {
		defer func() {
			if recover() == nil {
				t.Error("should panic")
			}
		}()
		f()
	}

	t.Run("Request", func(t *testing.T) {
		mustPanic(t, func() { (&CallState{}).MustHaveRequest() })
		(&CallState{Request: &ApiRequest{}}).MustHaveRequest()
	})

	t.Run("RawRequest", func(t *testing.T) {
		mustPanic(t, func() { (&CallState{}).MustHaveRawRequest() })
	})

	t.Run("RawResponse", func(t *testing.T) {
		mustPanic(t, func() { (&CallState{}).MustHaveRawResponse() })
	})
}

func TestCallState_CustomData(t *testing.T) {
	s := &CallState{}

	_, ok := s.GetCustomData("k")
	assert.False(t, ok)

	s.SetCustomData("k", 1)
	s.SetCustomData("k2", "v2")

	v, ok := s.GetCustomData("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = s.GetCustomData("k2")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}
