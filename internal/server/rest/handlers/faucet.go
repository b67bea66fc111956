package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensdomains/ens-faucet-worker/internal/server/rest/middleware"
	"github.com/ensdomains/ens-faucet-worker/internal/server/service"
	"github.com/ensdomains/ens-faucet-worker/pkg/config"
	"github.com/ensdomains/ens-faucet-worker/pkg/models"
)

type Faucet struct {
	Service        *service.Faucet
	Networks       map[string]*config.Network
	DefaultNetwork string
}

// Rpc is the single JSON-RPC endpoint. The optional :network path segment
// selects the target network, defaulting when absent.
func (h *Faucet) Rpc(c *gin.Context) {
	network := c.Param("network")
	if network == "" {
		network = h.DefaultNetwork
	}
	if _, ok := h.Networks[network]; !ok {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	var req models.RpcRequest
	err := c.ShouldBindJSON(&req)
	if err != nil || req.JsonRpc == "" || req.Method == "" || req.Params == nil {
		respondError(c, http.StatusBadRequest, req.Id, models.CodeInvalidRequest, "Invalid Request")
		return
	}

	ctx := c.Request.Context()

	switch req.Method {
	case models.MethodStatus:
		result, err := h.Service.Status(ctx, network)
		if err != nil {
			respondFailure(c, req.Id, err)
			return
		}
		respondResult(c, req.Id, result)

	case models.MethodGetAddress:
		result, err := h.Service.Address(ctx, network, firstParam(req.Params))
		if err != nil {
			respondFailure(c, req.Id, err)
			return
		}
		respondResult(c, req.Id, result)

	case models.MethodRequest:
		result, err := h.Service.Claim(ctx, network, firstParam(req.Params), c.GetString(middleware.RequestIdKey))
		if err != nil {
			respondFailure(c, req.Id, err)
			return
		}
		respondResult(c, req.Id, result)

	default:
		respondError(c, http.StatusNotFound, req.Id, models.CodeMethodNotFound, "Method not found")
	}
}

// firstParam pulls the address out of params. Anything that is not a
// non-empty string array comes back empty and fails address validation
// downstream.
func firstParam(raw json.RawMessage) string {
	var params []string
	if err := json.Unmarshal(raw, &params); err != nil || len(params) == 0 {
		return ""
	}
	return params[0]
}

func respondResult(c *gin.Context, id any, result any) {
	c.JSON(http.StatusOK, models.RpcResponse{
		JsonRpc: "2.0",
		Id:      id,
		Result:  result,
	})
}

func respondError(c *gin.Context, status int, id any, code int, message string) {
	c.JSON(status, models.RpcResponse{
		JsonRpc: "2.0",
		Id:      id,
		Error:   &models.RpcError{Code: code, Message: message},
	})
}

func respondFailure(c *gin.Context, id any, err error) {
	var faucetErr *service.FaucetError
	if errors.As(err, &faucetErr) {
		respondError(c, http.StatusBadRequest, id, faucetErr.Code, faucetErr.Message)
		return
	}

	log.Println("Error handling faucet request: " + err.Error())
	respondError(c, http.StatusInternalServerError, id, models.CodeInternalError, "Internal error")
}
