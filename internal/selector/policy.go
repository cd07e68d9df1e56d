package selector

import (
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// Candidate is a narrowed UTXO with its decoded value.
type Candidate struct {
	ID     model.TxID
	Assets tx3.CanonicalAssets
}

// MatchPolicy picks the UTXOs returned for a query among the candidates.
// Picked ids must come from candidates.
type MatchPolicy interface {
	Pick(query tx3.InputQuery, candidates []Candidate) []model.TxID
}

// FirstMatch returns the first candidate meeting every minimum amount. It
// does not look for the smallest or best covering set, and never returns
// more than one UTXO.
type FirstMatch struct{}

func (FirstMatch) Pick(query tx3.InputQuery, candidates []Candidate) []model.TxID {
	for _, candidate := range candidates {
		if Satisfies(query, candidate.Assets) {
			return []model.TxID{candidate.ID}
		}
	}
	return nil
}

// Satisfies reports whether assets meet every minimum amount of the query.
func Satisfies(query tx3.InputQuery, assets tx3.CanonicalAssets) bool {
	for _, req := range query.MinAmount {
		if req.Amount == nil {
			continue
		}
		if assets.Amount(req.Class()).Cmp(req.Amount) < 0 {
			return false
		}
	}
	return true
}
