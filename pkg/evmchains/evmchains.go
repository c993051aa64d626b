// Package evmchains exposes the ethereum-lists/chains metadata bundled under
// ethereum-list/chains/_data/chains as an in-memory catalog keyed by chain id.
//
// The catalog is built on first use and never changes afterwards. A broken data
// directory is not something a caller can recover from at lookup time, so Get
// panics with the *BuildError; programs that prefer to fail cleanly call Load
// during startup and handle the error there.
package evmchains

import (
	"io"
	"sync"

	"chainlist-catalog/internal/adapter/storage/chainlist"
	"chainlist-catalog/internal/domain/entity"
	"chainlist-catalog/internal/pkg/apperrors"
)

// DefaultDataDir is the directory, relative to the working directory, that the
// process-wide catalog is built from.
const DefaultDataDir = chainlist.DefaultDataDir

type (
	Chain          = entity.Chain
	NativeCurrency = entity.NativeCurrency
	Explorer       = entity.Explorer
	Ens            = entity.Ens
	Catalog        = chainlist.Catalog
	BuildError     = chainlist.BuildError
	Error          = apperrors.Error
	Kind           = apperrors.Kind
)

const (
	KindFile            = apperrors.KindFile
	KindDeserialization = apperrors.KindDeserialization
)

var (
	ErrFile            = apperrors.ErrFile
	ErrDeserialization = apperrors.ErrDeserialization
	ErrCatalogBuild    = apperrors.ErrCatalogBuild
)

// lazyCatalog builds a catalog at most once, on first request. Concurrent
// callers block until that single build finishes and all observe its result.
// A failed build stays failed.
type lazyCatalog struct {
	get func() (*Catalog, error)
}

func newLazyCatalog(build func() (*Catalog, error)) *lazyCatalog {
	return &lazyCatalog{get: sync.OnceValues(build)}
}

var process = newLazyCatalog(func() (*Catalog, error) {
	return chainlist.Build(DefaultDataDir)
})

// Load returns the process-wide catalog, building it on the first call.
func Load() (*Catalog, error) {
	return process.get()
}

// MustLoad is Load that panics when the catalog cannot be built.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns a copy of the chain with the given id from the process-wide
// catalog. An unknown id yields false.
func Get(chainID uint64) (Chain, bool) {
	return MustLoad().Get(chainID)
}

// DecodeChainFile reads and decodes eip155-<chainID>.json from DefaultDataDir
// without touching the catalog. Failures are *Error values of KindFile or
// KindDeserialization.
func DecodeChainFile(chainID uint64) (Chain, error) {
	return chainlist.DecodeFile(DefaultDataDir, chainID)
}

// Decode decodes a single chain document.
func Decode(r io.Reader) (Chain, error) {
	return chainlist.Decode(r)
}

// Encode renders a chain in the ethereum-lists JSON format.
func Encode(c Chain) ([]byte, error) {
	return chainlist.Encode(c)
}
