package cardano

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	hrpMainnet      = "addr"
	hrpTestnet      = "addr_test"
	hrpStakeMainnet = "stake"
	hrpStakeTestnet = "stake_test"
)

// DecodeAddress returns the raw bytes of a bech32 encoded address.
func DecodeAddress(address string) ([]byte, error) {
	_, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAddress, address, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAddress, address, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s: empty payload", ErrInvalidAddress, address)
	}
	return raw, nil
}

// EncodeAddress renders raw address bytes as bech32. The human readable part is
// derived from the header byte.
func EncodeAddress(raw []byte) (string, error) {
	hrp, err := addressHRP(raw)
	if err != nil {
		return "", err
	}
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return encoded, nil
}

func addressHRP(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	header := raw[0]
	mainnet := header&0x0f == 1

	switch kind := header >> 4; {
	case kind <= 7:
		if mainnet {
			return hrpMainnet, nil
		}
		return hrpTestnet, nil
	case kind == 14 || kind == 15:
		if mainnet {
			return hrpStakeMainnet, nil
		}
		return hrpStakeTestnet, nil
	default:
		// byron addresses are base58 and never bech32
		return "", fmt.Errorf("%w: unsupported header %#x", ErrInvalidAddress, header)
	}
}
