package model

import "encoding/hex"

const (
	newTxTag         = "NewTx"
	newTxType        = "Tx ConwayEra"
	newTxDescription = "Tx3 Transaction"
)

// NewTxMessage submits a transaction over the head WebSocket.
type NewTxMessage struct {
	Tag         string      `json:"tag"`
	Transaction Transaction `json:"transaction"`
}

// Transaction is the text envelope of a serialized transaction.
type Transaction struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CBORHex     string `json:"cborHex"`
}

// NewTx wraps raw transaction CBOR in a NewTx envelope.
func NewTx(cbor []byte) NewTxMessage {
	return NewTxMessage{
		Tag: newTxTag,
		Transaction: Transaction{
			Type:        newTxType,
			Description: newTxDescription,
			CBORHex:     hex.EncodeToString(cbor),
		},
	}
}

// Encode serializes the message for the wire.
func (m NewTxMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}
