package service

import (
	"context"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra"
	"github.com/goodnatureofminers/hydra-trp/internal/selector"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ParamsSource interface {
		ProtocolParams(ctx context.Context) (tx3.PParams, error)
	}
	SnapshotSource interface {
		Snapshot() hydra.UtxoView
	}
	InputSelector interface {
		Select(view selector.LedgerView, query tx3.InputQuery) (tx3.UtxoSet, error)
	}
)
