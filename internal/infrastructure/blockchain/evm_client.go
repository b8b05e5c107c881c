package blockchain

import (
	"context"
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ErrReceiptNotFound is returned while a transaction is still in the mempool
var ErrReceiptNotFound = errors.New("transaction receipt not found")

var (
	dialEVMClient    = ethclient.Dial
	getClientChainID = func(client *ethclient.Client, ctx context.Context) (*big.Int, error) {
		return client.ChainID(ctx)
	}
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsValidAddress reports whether s is a well-formed 0x-prefixed EVM address.
// The prefix is required because these strings go into the ledger verbatim.
func IsValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// IsValidTxHash reports whether s is a well-formed transaction hash
func IsValidTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// ReceiptStatus is the verification outcome for one transaction hash
type ReceiptStatus struct {
	Found       bool
	Succeeded   bool
	BlockNumber uint64
}

// EVMClient provides EVM blockchain interaction
type EVMClient struct {
	client  *ethclient.Client
	chainID *big.Int
	rpcURL  string
	// testReceipt allows deterministic unit tests without network sockets.
	testReceipt func(ctx context.Context, txHash string) (*types.Receipt, error)
}

// NewEVMClient creates a new EVM client
func NewEVMClient(rpcURL string) (*EVMClient, error) {
	client, err := dialEVMClient(rpcURL)
	if err != nil {
		return nil, err
	}

	chainID, err := getClientChainID(client, context.Background())
	if err != nil {
		return nil, err
	}

	return &EVMClient{
		client:  client,
		chainID: chainID,
		rpcURL:  rpcURL,
	}, nil
}

// NewEVMClientWithReceiptFn creates a client that uses an injected receipt
// lookup. Intended for unit tests where RPC sockets are unavailable.
func NewEVMClientWithReceiptFn(chainID *big.Int, receiptFn func(ctx context.Context, txHash string) (*types.Receipt, error)) *EVMClient {
	if chainID == nil {
		chainID = big.NewInt(1)
	}
	return &EVMClient{
		chainID:     chainID,
		testReceipt: receiptFn,
	}
}

// ChainID returns the chain ID
func (c *EVMClient) ChainID() *big.Int {
	return c.chainID
}

// GetTransactionReceipt gets the receipt for a transaction hash
func (c *EVMClient) GetTransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	if c.testReceipt != nil {
		return c.testReceipt(ctx, txHash)
	}
	hash := common.HexToHash(txHash)
	return c.client.TransactionReceipt(ctx, hash)
}

// CheckReceipt looks up the receipt and maps it to a verification outcome. A
// hash with no receipt yet is pending, not failed.
func (c *EVMClient) CheckReceipt(ctx context.Context, txHash string) (*ReceiptStatus, error) {
	receipt, err := c.GetTransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) || errors.Is(err, ErrReceiptNotFound) {
			return &ReceiptStatus{Found: false}, nil
		}
		return nil, err
	}
	return &ReceiptStatus{
		Found:       true,
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// GetBlockNumber gets the latest block number
func (c *EVMClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}
