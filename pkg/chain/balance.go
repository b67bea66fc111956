package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

type Client struct {
	eth *ethclient.Client
}

func Dial(rpcUri string) (*Client, error) {
	eth, err := ethclient.Dial(rpcUri)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc node: %w", err)
	}

	return &Client{eth: eth}, nil
}

// GetBalance returns the latest native balance of address in wei.
func (c *Client) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}

	return balance, nil
}
