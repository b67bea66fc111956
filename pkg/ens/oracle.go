package ens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// The subgraph indexes account ids in lowercase hex, so queries must use the
// lowercased address. One record of each kind is enough to decide ownership.
const accountQuery = `query getAccount($id: String!) {
  account(id: $id) {
    domains(first: 1) { id }
    registrations(first: 1) { id }
    wrappedDomains(first: 1) { id }
  }
}`

type Oracle struct {
	http *resty.Client
}

type graphRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphResponse struct {
	Data struct {
		Account *struct {
			Domains        []idRecord `json:"domains"`
			Registrations  []idRecord `json:"registrations"`
			WrappedDomains []idRecord `json:"wrappedDomains"`
		} `json:"account"`
	} `json:"data"`
}

type idRecord struct {
	Id string `json:"id"`
}

func NewOracle(subgraphUri string) *Oracle {
	http := resty.New().
		SetBaseURL(subgraphUri).
		SetTimeout(15 * time.Second)

	return &Oracle{http: http}
}

// HasName reports whether address owns, has registered, or wraps at least one
// name on mainnet.
func (o *Oracle) HasName(ctx context.Context, address string) (bool, error) {
	var out graphResponse

	resp, err := o.http.R().
		SetContext(ctx).
		SetBody(graphRequest{
			Query:     accountQuery,
			Variables: map[string]string{"id": strings.ToLower(address)},
		}).
		SetResult(&out).
		Post("")
	if err != nil {
		return false, fmt.Errorf("failed to query subgraph: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("subgraph query returned %s", resp.Status())
	}

	account := out.Data.Account
	if account == nil {
		return false, nil
	}

	return len(account.Domains) > 0 ||
		len(account.Registrations) > 0 ||
		len(account.WrappedDomains) > 0, nil
}
