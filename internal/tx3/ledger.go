package tx3

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// IRVersion is the only intermediate representation version accepted for resolution.
const IRVersion = "v1alpha9"

// ErrCompilerUnavailable is returned when no transaction compiler is configured.
var ErrCompilerUnavailable = errors.New("transaction compiler not configured")

// UtxoRef points at a transaction output.
type UtxoRef struct {
	TxID  []byte
	Index uint32
}

// String renders the ref in the "<hex hash>#<index>" form.
func (r UtxoRef) String() string {
	return fmt.Sprintf("%s#%d", hex.EncodeToString(r.TxID), r.Index)
}

// AssetExpr is a minimum-amount requirement. A nil Policy means the native unit.
type AssetExpr struct {
	Policy    []byte
	AssetName []byte
	Amount    *big.Int
}

// Class returns the asset class the requirement targets.
func (a AssetExpr) Class() AssetClass {
	return NewAssetClass(a.Policy, a.AssetName)
}

// InputQuery constrains the UTXOs a transaction input may spend.
type InputQuery struct {
	Address    []byte
	MinAmount  []AssetExpr
	Refs       []UtxoRef
	Collateral bool
}

// Utxo is a resolved output handed to the compiler.
type Utxo struct {
	Ref     UtxoRef
	Address []byte
	Datum   Expression
	Assets  CanonicalAssets
	Script  []byte
}

// UtxoSet is the result of an input resolution.
type UtxoSet []Utxo

// PParams are the protocol parameters needed to balance a transaction.
type PParams struct {
	Network           uint8
	MinFeeCoefficient uint64
	MinFeeConstant    uint64
	CoinsPerUtxoByte  uint64
	CostModels        map[uint8][]int64
}

// Ledger is the view of the chain the compiler resolves against.
type Ledger interface {
	ProtocolParams(ctx context.Context) (PParams, error)
	ResolveInput(ctx context.Context, query InputQuery) (UtxoSet, error)
}

// Compiler turns a parameterized transaction template into signed-ready CBOR bytes.
type Compiler interface {
	Resolve(ctx context.Context, tx ProtoTx, ledger Ledger, maxOptimizeRounds int) ([]byte, error)
}
