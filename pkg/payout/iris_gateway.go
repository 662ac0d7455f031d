package payout

import (
	"fmt"
	"os"
	"strconv"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/iris"
)

// Gateway disburses redeemed credits to a student's account. Implementations
// must be safe to call after the wallet transaction has committed; a failed
// disbursement leaves the withdrawal in pending for manual retry.
type Gateway interface {
	Disburse(req *DisburseRequest) (referenceNo string, err error)
}

type DisburseRequest struct {
	BeneficiaryName    string
	BeneficiaryAccount string
	BeneficiaryBank    string
	BeneficiaryEmail   string
	Amount             int
	Notes              string
}

type irisGateway struct {
	client iris.Client
}

// NewIrisGateway configures the Midtrans Iris payout client from the
// environment, mirroring how the payment side picks its environment.
func NewIrisGateway() Gateway {
	var c iris.Client
	apiKey := os.Getenv("IRIS_API_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	c.New(apiKey, env)

	return &irisGateway{client: c}
}

func (g *irisGateway) Disburse(req *DisburseRequest) (string, error) {
	resp, midErr := g.client.CreatePayout(buildPayoutReq(req))
	if midErr != nil {
		return "", fmt.Errorf("iris payout error: %v", midErr.GetMessage())
	}

	if len(resp.Payouts) == 0 {
		return "", fmt.Errorf("iris payout returned no entries")
	}

	return resp.Payouts[0].ReferenceNo, nil
}

// buildPayoutReq maps a disbursement onto the Iris wire request. The client
// takes the request by value.
func buildPayoutReq(req *DisburseRequest) iris.CreatePayoutReq {
	return iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{
			{
				BeneficiaryName:    req.BeneficiaryName,
				BeneficiaryAccount: req.BeneficiaryAccount,
				BeneficiaryBank:    req.BeneficiaryBank,
				BeneficiaryEmail:   req.BeneficiaryEmail,
				Amount:             strconv.Itoa(req.Amount),
				Notes:              req.Notes,
			},
		},
	}
}
