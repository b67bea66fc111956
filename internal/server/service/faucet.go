package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ensdomains/ens-faucet-worker/pkg/config"
	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

// Collaborators are the per-network external services a claim goes through.
type Collaborators struct {
	Relayer models.RelayerImpl
	Chain   models.ChainImpl
}

type Faucet struct {
	networks map[string]*config.Network
	clients  map[string]Collaborators
	oracle   models.OracleImpl
	ledger   models.LedgerImpl
	payouts  models.PayoutImpl

	// injectable for interval boundary tests
	now func() time.Time
}

// New builds the faucet engine. payouts may be nil when the audit store is
// not configured.
func New(
	networks map[string]*config.Network,
	clients map[string]Collaborators,
	oracle models.OracleImpl,
	ledger models.LedgerImpl,
	payouts models.PayoutImpl,
) *Faucet {
	return &Faucet{
		networks: networks,
		clients:  clients,
		oracle:   oracle,
		ledger:   ledger,
		payouts:  payouts,
		now:      time.Now,
	}
}

func (f *Faucet) network(name string) (*config.Network, Collaborators, error) {
	net, ok := f.networks[name]
	if !ok {
		return nil, Collaborators{}, fmt.Errorf("unknown network: %s", name)
	}
	return net, f.clients[name], nil
}

// resolveStatus checks relayer health. Paused short-circuits, the balance is
// only queried for an unpaused relayer.
func (f *Faucet) resolveStatus(ctx context.Context, net *config.Network, c Collaborators) (string, error) {
	info, err := c.Relayer.GetRelayer(ctx)
	if err != nil {
		return "", err
	}
	if info.Paused {
		return models.StatusPaused, nil
	}

	balance, err := c.Chain.GetBalance(ctx, info.Address)
	if err != nil {
		return "", err
	}
	if net.ClaimAmount.Cmp(balance) > 0 {
		return models.StatusOutOfFunds, nil
	}

	return models.StatusOk, nil
}

func (f *Faucet) Status(ctx context.Context, network string) (*models.StatusResult, error) {
	net, clients, err := f.network(network)
	if err != nil {
		return nil, err
	}

	status, err := f.resolveStatus(ctx, net, clients)
	if err != nil {
		return nil, err
	}

	return &models.StatusResult{
		Status:   status,
		Amount:   net.ClaimAmount.String(),
		Interval: net.ClaimIntervalMs,
	}, nil
}

type claimState struct {
	status     string
	address    string
	claimedAt  int64
	hasClaimed bool
	hasName    bool
}

// inspect resolves everything a claim decision needs: faucet status, the
// canonical checksummed address, the ledger record, and name ownership. The
// address is only validated after the status check.
func (f *Faucet) inspect(ctx context.Context, net *config.Network, c Collaborators, address string) (*claimState, error) {
	status, err := f.resolveStatus(ctx, net, c)
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(address) {
		return nil, ErrInvalidAddress
	}
	checksummed := common.HexToAddress(address).Hex()

	claimedAt, err := f.ledger.GetClaim(net.Name, checksummed)
	if err != nil {
		return nil, err
	}
	hasClaimed := claimedAt > 0 && f.now().UnixMilli()-claimedAt < net.ClaimIntervalMs

	hasName, err := f.oracle.HasName(ctx, checksummed)
	if err != nil {
		return nil, err
	}

	return &claimState{
		status:     status,
		address:    checksummed,
		claimedAt:  claimedAt,
		hasClaimed: hasClaimed,
		hasName:    hasName,
	}, nil
}

// Address reports claim eligibility without mutating anything.
func (f *Faucet) Address(ctx context.Context, network, address string) (*models.AddressResult, error) {
	net, clients, err := f.network(network)
	if err != nil {
		return nil, err
	}

	state, err := f.inspect(ctx, net, clients, address)
	if err != nil {
		return nil, err
	}

	result := &models.AddressResult{
		Amount:   net.ClaimAmount.String(),
		Interval: net.ClaimIntervalMs,
		Status:   state.status,
	}
	if state.hasClaimed {
		result.Eligible = false
		result.Next = state.claimedAt + net.ClaimIntervalMs
	} else {
		result.Eligible = state.hasName
		result.Next = 0
	}

	return result, nil
}

// Claim executes a payout. Rejections are checked in a fixed order: already
// claimed, no name, faucet unhealthy.
func (f *Faucet) Claim(ctx context.Context, network, address, requestId string) (*models.ClaimResult, error) {
	net, clients, err := f.network(network)
	if err != nil {
		return nil, err
	}

	state, err := f.inspect(ctx, net, clients, address)
	if err != nil {
		return nil, err
	}

	if state.hasClaimed {
		return nil, ErrAlreadyClaimed
	}
	if !state.hasName {
		return nil, ErrNoName
	}
	if state.status != models.StatusOk {
		return nil, unhealthyError(state.status)
	}

	txId, err := clients.Relayer.SendTransaction(ctx, state.address, net.ClaimAmount)
	if err != nil {
		return nil, err
	}
	if txId == "" {
		return nil, ErrTxFailed
	}

	ttl := time.Duration(net.ClaimIntervalMs) * time.Millisecond
	if err = f.ledger.PutClaim(net.Name, state.address, f.now().UnixMilli(), ttl); err != nil {
		return nil, err
	}

	if f.payouts != nil {
		if _, err = f.payouts.RecordPayout(net.Name, state.address, net.ClaimAmount.String(), txId, requestId); err != nil {
			log.Println("Error recording payout: " + err.Error())
		}
	}

	return &models.ClaimResult{Id: txId}, nil
}
