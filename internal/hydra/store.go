package hydra

import (
	"strings"
	"sync"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

// Progress is the position of the last confirmed snapshot.
type Progress struct {
	Seq       uint64
	Timestamp string
}

// Store holds the head state mirrored from the event feed. Each field has
// its own lock, so a reader may see the status of one update next to the
// UTXO set of another.
type Store struct {
	statusMu sync.RWMutex
	status   model.HeadStatus

	utxosMu sync.RWMutex
	utxos   UtxoView

	progressMu sync.RWMutex
	progress   Progress
}

// NewStore returns an empty store with a closed head.
func NewStore() *Store {
	return &Store{
		status: model.HeadClosed,
		utxos:  UtxoView{},
	}
}

// ApplyBootstrap sets the head status and replaces the UTXO set.
func (s *Store) ApplyBootstrap(status model.HeadStatus, utxos map[model.TxID]model.Utxo) {
	s.SetHeadStatus(status)
	s.ApplySnapshot(utxos)
}

// ApplySnapshot replaces the whole UTXO set. Entries are never merged.
func (s *Store) ApplySnapshot(utxos map[model.TxID]model.Utxo) {
	view := make(UtxoView, len(utxos))
	for id, utxo := range utxos {
		view[id] = utxo
	}

	s.utxosMu.Lock()
	s.utxos = view
	s.utxosMu.Unlock()
}

// SetHeadStatus records the head status reported by the feed.
func (s *Store) SetHeadStatus(status model.HeadStatus) {
	s.statusMu.Lock()
	s.status = status
	s.statusMu.Unlock()
}

// SetProgress records the last confirmed snapshot position.
func (s *Store) SetProgress(progress Progress) {
	s.progressMu.Lock()
	s.progress = progress
	s.progressMu.Unlock()
}

// Snapshot returns the current UTXO set. The view must not be modified.
func (s *Store) Snapshot() UtxoView {
	s.utxosMu.RLock()
	defer s.utxosMu.RUnlock()
	return s.utxos
}

// HeadStatus returns the last reported head status.
func (s *Store) HeadStatus() model.HeadStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// Progress returns the last confirmed snapshot position.
func (s *Store) Progress() Progress {
	s.progressMu.RLock()
	defer s.progressMu.RUnlock()
	return s.progress
}

// UtxoView is an immutable UTXO set swapped in by a single update.
type UtxoView map[model.TxID]model.Utxo

// ByAddress returns the keys of outputs locked at the bech32 address.
func (v UtxoView) ByAddress(address string) []model.TxID {
	var ids []model.TxID
	for id, utxo := range v {
		if utxo.Address == address {
			ids = append(ids, id)
		}
	}
	return ids
}

// ByAsset returns the keys of outputs holding a non-zero amount of the asset.
func (v UtxoView) ByAsset(policyHex, nameHex string) []model.TxID {
	policyHex = strings.ToLower(policyHex)
	nameHex = strings.ToLower(nameHex)

	var ids []model.TxID
	for id, utxo := range v {
		if utxo.Value.AssetsByPolicy(policyHex)[nameHex] > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// ByRefs returns the keys from refs that are present in the view.
func (v UtxoView) ByRefs(refs []model.TxID) []model.TxID {
	var ids []model.TxID
	for _, id := range refs {
		if _, ok := v[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Get returns the entries for ids in the given order, skipping unknown keys.
func (v UtxoView) Get(ids []model.TxID) []model.UtxoEntry {
	entries := make([]model.UtxoEntry, 0, len(ids))
	for _, id := range ids {
		if utxo, ok := v[id]; ok {
			entries = append(entries, model.UtxoEntry{ID: id, Utxo: utxo})
		}
	}
	return entries
}

// Len returns the number of UTXOs in the view.
func (v UtxoView) Len() int {
	return len(v)
}
