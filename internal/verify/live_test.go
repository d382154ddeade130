package verify

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/pkg/verimail"
)

type mockVerimailClient struct {
	mock.Mock
}

func (m *mockVerimailClient) Verify(ctx context.Context, email string) (*verimail.VerifyResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verimail.VerifyResponse), args.Error(1)
}

func TestLiveVerifyMissingCredential(t *testing.T) {
	client := &mockVerimailClient{}
	v := NewLive(client, "", 10, 1)

	out := v.Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusErrorConfig, out.Status)
	assert.Contains(t, out.Detail, "not configured")

	// No network call was made.
	client.AssertNotCalled(t, "Verify")
}

func TestLiveVerifyResultMapping(t *testing.T) {
	tests := []struct {
		result string
		want   model.Status
	}{
		{"deliverable", model.StatusValid},
		{"undeliverable", model.StatusInvalid},
		{"catch_all", model.StatusCatchall},
		{"disposable", model.StatusDisposable},
		{"risky", model.StatusUnknown},
		{"", model.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			client := &mockVerimailClient{}
			client.On("Verify", mock.Anything, "a@b.com").Return(&verimail.VerifyResponse{
				Status: "success",
				Result: tt.result,
			}, nil)

			out := NewLive(client, "key", 100, 10).Verify(context.Background(), "a@b.com")
			assert.Equal(t, tt.want, out.Status)
		})
	}
}

func TestLiveVerifyVendorFailureStatus(t *testing.T) {
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(&verimail.VerifyResponse{
		Status:  "error",
		Message: "daily quota exceeded",
	}, nil)

	out := NewLive(client, "key", 100, 10).Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusErrorService, out.Status)
	assert.Equal(t, "daily quota exceeded", out.Detail)
}

func TestLiveVerifyVendorRejection(t *testing.T) {
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(nil, &verimail.APIError{
		StatusCode: 429,
		Body:       "rate limited",
	})

	out := NewLive(client, "key", 100, 10).Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusErrorService, out.Status)
	assert.Equal(t, "rate limited", out.Detail)
}

func TestLiveVerifyNetworkError(t *testing.T) {
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(nil, eris.New("dial tcp: lookup failed"))

	out := NewLive(client, "key", 100, 10).Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusErrorInvocation, out.Status)
	assert.Contains(t, out.Detail, "lookup failed")
}

func TestLiveVerifyServerError(t *testing.T) {
	// A 500 is a transport fault, not a vendor rejection. It is retried
	// before being classified as an invocation error.
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(nil, &verimail.APIError{
		StatusCode: 500,
		Body:       "internal error",
	})

	v := NewLive(client, "key", 100, 10)
	v.retry.MaxAttempts = 3
	v.retry.InitialBackoff = time.Millisecond

	out := v.Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusErrorInvocation, out.Status)
	client.AssertNumberOfCalls(t, "Verify", 3)
}

func TestLiveVerifyRecoversAfterTransientFault(t *testing.T) {
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(nil, &verimail.APIError{
		StatusCode: 503,
		Body:       "try again",
	}).Once()
	client.On("Verify", mock.Anything, mock.Anything).Return(&verimail.VerifyResponse{
		Status: "success",
		Result: "deliverable",
	}, nil)

	v := NewLive(client, "key", 100, 10)
	v.retry.InitialBackoff = time.Millisecond

	out := v.Verify(context.Background(), "a@b.com")
	assert.Equal(t, model.StatusValid, out.Status)
}

func TestLiveVerifyDomainFromResponse(t *testing.T) {
	client := &mockVerimailClient{}
	client.On("Verify", mock.Anything, mock.Anything).Return(&verimail.VerifyResponse{
		Status: "success",
		Result: "deliverable",
		Domain: "acmeplumbing.com",
	}, nil)

	out := NewLive(client, "key", 100, 10).Verify(context.Background(), "j.smith@acmeplumbing.com")
	require.Equal(t, model.StatusValid, out.Status)
	assert.Equal(t, "acmeplumbing.com", out.Domain)
}
