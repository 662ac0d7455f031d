package payout

import (
	"testing"

	"github.com/midtrans/midtrans-go/iris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayoutReq(t *testing.T) {
	// iris.Client.CreatePayout takes its request by value; keep the mapping
	// on that exact type.
	var req iris.CreatePayoutReq = buildPayoutReq(&DisburseRequest{
		BeneficiaryName:    "A Student",
		BeneficiaryAccount: "1234567890",
		BeneficiaryBank:    "bni",
		BeneficiaryEmail:   "student@somaiya.edu",
		Amount:             100,
		Notes:              "Campus credit redemption",
	})

	require.Len(t, req.Payouts, 1)
	payout := req.Payouts[0]
	assert.Equal(t, "A Student", payout.BeneficiaryName)
	assert.Equal(t, "1234567890", payout.BeneficiaryAccount)
	assert.Equal(t, "bni", payout.BeneficiaryBank)
	assert.Equal(t, "100", payout.Amount)
	assert.Equal(t, "Campus credit redemption", payout.Notes)
}
