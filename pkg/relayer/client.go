package relayer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"

	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

const (
	// Payouts are plain value transfers, so the intrinsic gas is enough.
	payoutGasLimit = 21000
	payoutSpeed    = "fast"
)

type Client struct {
	http  *resty.Client
	debug bool
}

type sendRequest struct {
	To       string `json:"to"`
	Value    string `json:"value"`
	Speed    string `json:"speed"`
	GasLimit uint64 `json:"gasLimit"`
}

type sendResponse struct {
	TransactionId string `json:"transactionId"`
}

func NewClient(uri, apiKey, apiSecret string, debug bool) *Client {
	http := resty.New().
		SetBaseURL(uri).
		SetHeader("X-Api-Key", apiKey).
		SetHeader("X-Api-Secret", apiSecret).
		SetTimeout(15 * time.Second)

	return &Client{http: http, debug: debug}
}

func (c *Client) GetRelayer(ctx context.Context) (*models.RelayerInfo, error) {
	var info models.RelayerInfo

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/relayer")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch relayer info: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("relayer info request returned %s", resp.Status())
	}

	if c.debug {
		spew.Dump(info)
	}

	return &info, nil
}

func (c *Client) SendTransaction(ctx context.Context, to string, value *big.Int) (string, error) {
	var out sendResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			To:       to,
			Value:    hexutil.EncodeBig(value),
			Speed:    payoutSpeed,
			GasLimit: payoutGasLimit,
		}).
		SetResult(&out).
		Post("/txs")
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("relayer send returned %s", resp.Status())
	}

	if c.debug {
		spew.Dump(out)
	}

	return out.TransactionId, nil
}
