package ncloud

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiRequest_Validate(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		for _, method := range []string{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete} {
			r := &ApiRequest{Method: method, Path: "/a"}
			assert.NoError(t, r.Validate(), method)
		}
	})

	t.Run("OKWithBody", func(t *testing.T) {
		for _, method := range []string{MethodPost, MethodPut, MethodPatch} {
			r := &ApiRequest{Method: method, Path: "/a", Body: map[string]int{"x": 1}}
			assert.NoError(t, r.Validate(), method)
		}
	})

	t.Run("BadMethod", func(t *testing.T) {
		for _, method := range []string{"", "get", "HEAD", "OPTIONS"} {
			r := &ApiRequest{Method: method, Path: "/a"}
			err := r.Validate()
			require.Error(t, err, method)
			assert.Regexp(t, "unsupported method", err.Error())
		}
	})

	t.Run("EmptyPath", func(t *testing.T) {
		r := &ApiRequest{Method: MethodGet}
		err := r.Validate()
		require.Error(t, err)
		assert.Regexp(t, "must not be empty", err.Error())
	})

	t.Run("NoLeadingSlash", func(t *testing.T) {
		r := &ApiRequest{Method: MethodGet, Path: "a/b"}
		err := r.Validate()
		require.Error(t, err)
		assert.Regexp(t, "must start with", err.Error())
	})

	t.Run("BodyNotAllowed", func(t *testing.T) {
		for _, method := range []string{MethodGet, MethodDelete} {
			r := &ApiRequest{Method: method, Path: "/a", Body: "data"}
			err := r.Validate()
			require.Error(t, err, method)
			assert.Regexp(t, "must not have a body", err.Error())
		}
	})
}

func TestCredentialProviderFunc(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		p := CredentialProviderFunc(func() (Credential, error) {
			return Credential{AccessKey: "ak", SecretKey: "sk"}, nil
		})

		credential, err := p.GetCredential()
		require.NoError(t, err)
		assert.Equal(t, "ak", credential.AccessKey)
		assert.Equal(t, "sk", credential.SecretKey)
	})

	t.Run("Error", func(t *testing.T) {
		p := CredentialProviderFunc(func() (Credential, error) {
			return Credential{}, errors.New("no credential")
		})

		_, err := p.GetCredential()
		require.Error(t, err)
	})
}

func TestStaticCredential(t *testing.T) {
	p := StaticCredential("ak", "sk")
	credential, err := p.GetCredential()
	require.NoError(t, err)
	assert.Equal(t, Credential{AccessKey: "ak", SecretKey: "sk"}, credential)
}

func TestClockFunc(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	clock := ClockFunc(func() time.Time { return fixed })
	assert.Equal(t, fixed, clock.Now())
}

func TestSystemClock(t *testing.T) {
	before := time.Now().Add(-time.Minute)
	now := SystemClock.Now()
	assert.True(t, now.After(before))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "1700000000000", FormatTimestamp(time.UnixMilli(1700000000000)))
	assert.Equal(t, "0", FormatTimestamp(time.UnixMilli(0)))
}
