// Package selector resolves input queries against a UTXO set snapshot.
//
// Every query is first narrowed to a bounded candidate set using its address,
// asset and reference constraints. Queries that cannot be narrowed, or whose
// candidate set exceeds MaxSearchSpace, are refused. The remaining candidates
// are handed to a MatchPolicy with their decoded amounts; the default
// FirstMatch returns the first candidate (in key order) that satisfies every
// minimum amount. Only the picked UTXOs are fully decoded.
package selector

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/hydra-trp/internal/cardano"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// MaxSearchSpace is the largest candidate set a query may narrow to.
const MaxSearchSpace = 50

var (
	// ErrQueryTooBroad is returned when a query does not narrow the UTXO set enough.
	ErrQueryTooBroad = errors.New("query too broad")
	// ErrUtxoNotFound is returned when an explicitly referenced UTXO is not in the snapshot.
	ErrUtxoNotFound = errors.New("utxo not found")
)

// LedgerView is the indexed read access the selector needs from a snapshot.
type LedgerView interface {
	ByAddress(address string) []model.TxID
	ByAsset(policyHex, nameHex string) []model.TxID
	ByRefs(refs []model.TxID) []model.TxID
	Get(ids []model.TxID) []model.UtxoEntry
}

// Selector is stateless; one instance serves concurrent queries.
type Selector struct {
	policy        MatchPolicy
	maxCandidates int
}

// New builds a Selector. A nil policy selects FirstMatch.
func New(policy MatchPolicy) *Selector {
	if policy == nil {
		policy = FirstMatch{}
	}
	return &Selector{policy: policy, maxCandidates: MaxSearchSpace}
}

// Select returns the UTXOs chosen for query, possibly none.
func (s *Selector) Select(view LedgerView, query tx3.InputQuery) (tx3.UtxoSet, error) {
	subset, err := s.narrow(view, query)
	if err != nil {
		return nil, err
	}
	if subset.IsUnconstrained() {
		return nil, fmt.Errorf("%w: no address, asset or reference constraint", ErrQueryTooBroad)
	}
	if subset.Len() > s.maxCandidates {
		return nil, fmt.Errorf("%w: %d candidates exceed limit of %d", ErrQueryTooBroad, subset.Len(), s.maxCandidates)
	}

	entries := view.Get(subset.IDs())
	candidates := make([]Candidate, 0, len(entries))
	utxos := make(map[model.TxID]model.Utxo, len(entries))
	for _, entry := range entries {
		// an undecodable value cannot satisfy any minimum, so it is never picked
		assets, err := cardano.DecodeAssets(entry.Utxo.Value)
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{ID: entry.ID, Assets: assets})
		utxos[entry.ID] = entry.Utxo
	}

	picked := s.policy.Pick(query, candidates)
	selected := make(tx3.UtxoSet, 0, len(picked))
	for _, id := range picked {
		raw, ok := utxos[id]
		if !ok {
			return nil, fmt.Errorf("match policy picked unknown utxo %s", id)
		}
		utxo, err := cardano.IntoUtxo(id, raw)
		if err != nil {
			return nil, fmt.Errorf("decode selected utxo: %w", err)
		}
		selected = append(selected, utxo)
	}
	return selected, nil
}

func (s *Selector) narrow(view LedgerView, query tx3.InputQuery) (Subset, error) {
	subsets := make([]Subset, 0, 2+len(query.MinAmount))

	if len(query.Address) > 0 {
		address, err := cardano.EncodeAddress(query.Address)
		if err != nil {
			return Subset{}, fmt.Errorf("query address: %w", err)
		}
		subsets = append(subsets, Bounded(view.ByAddress(address)...))
	}

	for _, req := range query.MinAmount {
		// lovelace and zero amounts are only checked on the final candidates
		if len(req.Policy) == 0 || req.Amount == nil || req.Amount.Sign() <= 0 {
			continue
		}
		ids := view.ByAsset(hex.EncodeToString(req.Policy), hex.EncodeToString(req.AssetName))
		subsets = append(subsets, Bounded(ids...))
	}

	if len(query.Refs) > 0 {
		refs := make([]model.TxID, 0, len(query.Refs))
		for _, ref := range query.Refs {
			refs = append(refs, cardano.FormatUtxoRef(ref))
		}
		wanted, found := Bounded(refs...), Bounded(view.ByRefs(refs)...)
		if missing := wanted.Len() - found.Len(); missing > 0 {
			return Subset{}, fmt.Errorf("%w: %d of %d references missing", ErrUtxoNotFound, missing, wanted.Len())
		}
		subsets = append(subsets, found)
	}

	return IntersectAll(subsets...), nil
}
