package model

import (
	"fmt"

	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// PlutusVersion keys the cost models map.
type PlutusVersion string

var (
	PlutusV1 PlutusVersion = "PlutusV1"
	PlutusV2 PlutusVersion = "PlutusV2"
	PlutusV3 PlutusVersion = "PlutusV3"
)

// Language returns the ledger language index of the version.
func (v PlutusVersion) Language() (uint8, error) {
	switch v {
	case PlutusV1:
		return 0, nil
	case PlutusV2:
		return 1, nil
	case PlutusV3:
		return 2, nil
	default:
		return 0, fmt.Errorf("unknown plutus version %q", v)
	}
}

// ProtocolParameters is the body of GET /protocol-parameters.
type ProtocolParameters struct {
	TxFeePerByte    uint64                    `json:"txFeePerByte"`
	TxFeeFixed      uint64                    `json:"txFeeFixed"`
	UtxoCostPerByte uint64                    `json:"utxoCostPerByte"`
	CostModels      map[PlutusVersion][]int64 `json:"costModels"`
}

// DecodeProtocolParameters parses the endpoint response body.
func DecodeProtocolParameters(data []byte) (ProtocolParameters, error) {
	var params ProtocolParameters
	if err := json.Unmarshal(data, &params); err != nil {
		return ProtocolParameters{}, fmt.Errorf("decode protocol parameters: %w", err)
	}
	return params, nil
}

// ToPParams converts head parameters for the compiler.
func (p ProtocolParameters) ToPParams(network uint8) (tx3.PParams, error) {
	costModels := make(map[uint8][]int64, len(p.CostModels))
	for version, model := range p.CostModels {
		language, err := version.Language()
		if err != nil {
			return tx3.PParams{}, err
		}
		costModels[language] = append([]int64(nil), model...)
	}

	return tx3.PParams{
		Network:           network,
		MinFeeCoefficient: p.TxFeePerByte,
		MinFeeConstant:    p.TxFeeFixed,
		CoinsPerUtxoByte:  p.UtxoCostPerByte,
		CostModels:        costModels,
	}, nil
}
