package payments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapProviderStatus(t *testing.T) {
	cases := []struct {
		provider string
		want     string
	}{
		{"succeeded", "completed"},
		{"approved", "completed"},
		{"processing", "pending"},
		{"in_process", "pending"},
		{"pending", "pending"},
		{"canceled", "failed"},
		{"cancelled", "failed"},
		{"rejected", "failed"},
		{"requires_payment_method", "failed"},
		// unknown provider states never surface as paid or failed
		{"charged_back", "pending"},
		{"", "pending"},
		// normalization
		{" Succeeded ", "completed"},
		{"APPROVED", "completed"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MapProviderStatus(tc.provider), "provider status %q", tc.provider)
	}
}

func TestMockGateway(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	charge, err := g.CreateCharge(t.Context(), ChargeRequest{Amount: 120, PayerEmail: "a@b.c"})
	require.NoError(t, err)
	require.NotEmpty(t, charge.ProviderID)
	require.NotEmpty(t, charge.Reference)
	require.Equal(t, "approved", charge.ProviderStatus)
	require.Equal(t, "completed", charge.Status)

	fetched, err := g.FetchCharge(t.Context(), charge.ProviderID)
	require.NoError(t, err)
	require.Equal(t, charge.ProviderID, fetched.ProviderID)
	require.Equal(t, "completed", fetched.Status)
}

func TestGatewayRequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	require.ErrorIs(t, err, ErrMissingAccessToken)
}
