package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ensdomains/ens-faucet-worker/internal/server/service"
	"github.com/ensdomains/ens-faucet-worker/pkg/config"
	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

const (
	testAddress    = "0x225f137127d9067788314bc7fcc1f36746a3c3b5"
	testIntervalMs = int64(60_000)
)

var testAmount = big.NewInt(250000000000000000)

type mockRelayer struct {
	info      models.RelayerInfo
	infoErr   error
	txId      string
	sentTo    string
	sentValue *big.Int
}

func (m *mockRelayer) GetRelayer(ctx context.Context) (*models.RelayerInfo, error) {
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	info := m.info
	return &info, nil
}

func (m *mockRelayer) SendTransaction(ctx context.Context, to string, value *big.Int) (string, error) {
	m.sentTo = to
	m.sentValue = value
	return m.txId, nil
}

type mockChain struct {
	balance *big.Int
}

func (m *mockChain) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	return m.balance, nil
}

type mockOracle struct {
	hasName bool
}

func (m *mockOracle) HasName(ctx context.Context, address string) (bool, error) {
	return m.hasName, nil
}

type mockLedger struct {
	records map[string]int64
}

func (m *mockLedger) GetClaim(network, address string) (int64, error) {
	return m.records[network+"/"+address], nil
}

func (m *mockLedger) PutClaim(network, address string, claimedAt int64, ttl time.Duration) error {
	m.records[network+"/"+address] = claimedAt
	return nil
}

type testDeps struct {
	relayer *mockRelayer
	chain   *mockChain
	oracle  *mockOracle
	ledger  *mockLedger
}

func healthyDeps() *testDeps {
	return &testDeps{
		relayer: &mockRelayer{
			info: models.RelayerInfo{Address: "0x1111111111111111111111111111111111111111"},
			txId: "0xdeadbeef",
		},
		chain:  &mockChain{balance: new(big.Int).Mul(testAmount, big.NewInt(10))},
		oracle: &mockOracle{hasName: true},
		ledger: &mockLedger{records: make(map[string]int64)},
	}
}

func setupTestRouter(deps *testDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)

	networks := map[string]*config.Network{
		"sepolia": {
			Name:            "sepolia",
			ClaimAmount:     new(big.Int).Set(testAmount),
			ClaimIntervalMs: testIntervalMs,
		},
	}

	engine := service.New(
		networks,
		map[string]service.Collaborators{
			"sepolia": {Relayer: deps.relayer, Chain: deps.chain},
		},
		deps.oracle,
		deps.ledger,
		nil,
	)

	handler := &Faucet{
		Service:        engine,
		Networks:       networks,
		DefaultNetwork: "sepolia",
	}

	router := gin.New()
	router.POST("/", handler.Rpc)
	router.POST("/:network", handler.Rpc)
	return router
}

func rpcCall(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf []byte
	switch b := body.(type) {
	case string:
		buf = []byte(b)
	default:
		buf, _ = json.Marshal(b)
	}

	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func rpcRequest(method string, params ...string) map[string]any {
	if params == nil {
		params = []string{}
	}
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.RpcResponse {
	var response models.RpcResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestRpc_InvalidJSON(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/", `{"invalid": json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeInvalidRequest, response.Error.Code)
	assert.Equal(t, "Invalid Request", response.Error.Message)
}

func TestRpc_MissingEnvelopeFields(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	bodies := []string{
		`{"id":1,"method":"faucet_status","params":[]}`,
		`{"jsonrpc":"2.0","id":1,"params":[]}`,
		`{"jsonrpc":"2.0","id":1,"method":"faucet_status"}`,
	}

	for _, body := range bodies {
		w := rpcCall(router, "/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		response := decodeResponse(t, w)
		assert.Equal(t, models.CodeInvalidRequest, response.Error.Code, body)
	}
}

func TestRpc_EchoesRequestId(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/", `{"jsonrpc":"2.0","id":"abc-123","method":"faucet_status","params":[]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "abc-123", response.Id)
}

func TestRpc_UnknownMethod(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/", rpcRequest("faucet_drain"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeMethodNotFound, response.Error.Code)
	assert.Equal(t, "Method not found", response.Error.Message)
}

func TestRpc_UnknownNetwork(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/mainnet", rpcRequest(models.MethodStatus))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())
}

func TestRpc_Status(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodStatus))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Nil(t, response.Error)

	result := response.Result.(map[string]any)
	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, testAmount.String(), result["amount"])
	assert.Equal(t, float64(testIntervalMs), result["interval"])
}

func TestRpc_StatusOnDefaultNetwork(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/", rpcRequest(models.MethodStatus))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Nil(t, response.Error)
}

func TestRpc_StatusPaused(t *testing.T) {
	deps := healthyDeps()
	deps.relayer.info.Paused = true
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodStatus))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	result := response.Result.(map[string]any)
	assert.Equal(t, "paused", result["status"])
}

func TestRpc_GetAddress_Eligible(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodGetAddress, testAddress))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	result := response.Result.(map[string]any)
	assert.Equal(t, true, result["eligible"])
	assert.Equal(t, float64(0), result["next"])
	assert.Equal(t, "ok", result["status"])
}

func TestRpc_GetAddress_WithoutName(t *testing.T) {
	deps := healthyDeps()
	deps.oracle.hasName = false
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodGetAddress, testAddress))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	result := response.Result.(map[string]any)
	assert.Equal(t, false, result["eligible"])
}

func TestRpc_GetAddress_InvalidAddress(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodGetAddress, "not-an-address"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeFaucetError, response.Error.Code)
	assert.Equal(t, "Invalid address", response.Error.Message)
}

func TestRpc_Request_Success(t *testing.T) {
	deps := healthyDeps()
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Nil(t, response.Error)

	result := response.Result.(map[string]any)
	assert.Equal(t, "0xdeadbeef", result["id"])

	assert.Equal(t, common.HexToAddress(testAddress).Hex(), deps.relayer.sentTo)
	assert.Equal(t, 0, deps.relayer.sentValue.Cmp(testAmount))
}

func TestRpc_Request_ThenGetAddressIneligible(t *testing.T) {
	deps := healthyDeps()
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))
	assert.Equal(t, http.StatusOK, w.Code)

	w = rpcCall(router, "/sepolia", rpcRequest(models.MethodGetAddress, testAddress))
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	result := response.Result.(map[string]any)
	assert.Equal(t, false, result["eligible"])
	assert.Greater(t, result["next"], float64(0))
}

func TestRpc_Request_AlreadyClaimed(t *testing.T) {
	deps := healthyDeps()
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))
	assert.Equal(t, http.StatusOK, w.Code)

	w = rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeFaucetError, response.Error.Code)
	assert.Equal(t, "Address has already claimed", response.Error.Message)
}

func TestRpc_Request_WithoutName(t *testing.T) {
	deps := healthyDeps()
	deps.oracle.hasName = false
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeFaucetError, response.Error.Code)
	assert.Equal(t, "Address does not own a name on mainnet", response.Error.Message)
}

func TestRpc_Request_FaucetUnhealthy(t *testing.T) {
	deps := healthyDeps()
	deps.chain.balance = big.NewInt(0)
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Faucet error: out of funds", response.Error.Message)
}

func TestRpc_Request_TransactionFailed(t *testing.T) {
	deps := healthyDeps()
	deps.relayer.txId = ""
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest, testAddress))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Transaction failed", response.Error.Message)
}

func TestRpc_Request_EmptyParams(t *testing.T) {
	router := setupTestRouter(healthyDeps())

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodRequest))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Invalid address", response.Error.Message)
}

func TestRpc_CollaboratorFailureIsInternalError(t *testing.T) {
	deps := healthyDeps()
	deps.relayer.infoErr = errors.New("relayer unreachable")
	router := setupTestRouter(deps)

	w := rpcCall(router, "/sepolia", rpcRequest(models.MethodStatus))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, models.CodeInternalError, response.Error.Code)
	assert.Equal(t, "Internal error", response.Error.Message)
}
