package chainlist

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"chainlist-catalog/internal/domain/entity"
	"chainlist-catalog/internal/pkg/apperrors"

	"go.uber.org/zap"
)

// BuildStage names the step of a catalog build that failed.
type BuildStage string

// Build stages, in the order they run for each file.
const (
	StageListDir   BuildStage = "list directory"
	StageFileName  BuildStage = "parse file name"
	StageDecode    BuildStage = "decode file"
	StageMismatch  BuildStage = "check chain id"
	StageDuplicate BuildStage = "insert chain"
)

// BuildError is returned by Build when the data directory is unusable. It matches
// apperrors.ErrCatalogBuild under errors.Is, as well as its cause.
type BuildError struct {
	Stage BuildStage
	Dir   string
	// File is empty for StageListDir.
	File string
	Err  error
}

func (e *BuildError) Error() string {
	where := e.Dir
	if e.File != "" {
		where = filepath.Join(e.Dir, e.File)
	}
	return fmt.Sprintf("%s: %s %s: %v", apperrors.ErrCatalogBuild, e.Stage, where, e.Err)
}

func (e *BuildError) Unwrap() []error {
	return []error{apperrors.ErrCatalogBuild, e.Err}
}

// Catalog is an immutable index of chains by chain id. It is safe for concurrent
// use; every accessor hands out copies.
type Catalog struct {
	dir         string
	chains      map[uint64]entity.Chain
	ids         []uint64
	byShortName map[string]uint64
}

type buildOptions struct {
	logger        *zap.Logger
	strictChainID bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithLogger makes Build report progress to logger.
func WithLogger(logger *zap.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// WithLenientChainID accepts files whose chainId field differs from the id in
// their name. The file name stays the index key.
func WithLenientChainID() BuildOption {
	return func(o *buildOptions) {
		o.strictChainID = false
	}
}

// Build reads every eip155-<id>.json file in dir into a Catalog. Entries that are
// not regular files are skipped. Any other problem aborts the whole build with a
// *BuildError: a catalog is either complete or not built at all.
func Build(dir string, opts ...BuildOption) (*Catalog, error) {
	o := buildOptions{
		logger:        zap.NewNop(),
		strictChainID: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.Named("ChainCatalog")
	start := time.Now()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &BuildError{Stage: StageListDir, Dir: dir, Err: apperrors.NewFileError(err)}
	}

	logger.Debug("Building chain catalog", zap.String("dir", dir), zap.Int("entries", len(entries)))

	chains := make(map[uint64]entity.Chain, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			logger.Debug("Skipping non-regular directory entry",
				zap.String("name", name), zap.Stringer("mode", entry.Type()),
			)
			continue
		}

		chainID, err := ParseFileName(name)
		if err != nil {
			return nil, &BuildError{Stage: StageFileName, Dir: dir, File: name, Err: err}
		}

		chain, err := decodePath(filepath.Join(dir, name))
		if err != nil {
			return nil, &BuildError{Stage: StageDecode, Dir: dir, File: name, Err: err}
		}

		if chain.Ens != nil {
			if _, ok := chain.Ens.Address(); !ok {
				logger.Warn("ENS registry is not a hex address",
					zap.String("name", name), zap.String("registry", chain.Ens.Registry),
				)
			}
		}

		if chain.ChainID != chainID {
			if o.strictChainID {
				return nil, &BuildError{Stage: StageMismatch, Dir: dir, File: name,
					Err: fmt.Errorf("%w: file name says chain %d, document says %d",
						apperrors.ErrConflict, chainID, chain.ChainID,
					),
				}
			}
			logger.Warn("Chain id in document differs from file name, keeping file name",
				zap.String("name", name),
				zap.Uint64("fileChainId", chainID),
				zap.Uint64("documentChainId", chain.ChainID),
			)
		}

		if _, exists := chains[chainID]; exists {
			return nil, &BuildError{Stage: StageDuplicate, Dir: dir, File: name,
				Err: fmt.Errorf("%w: duplicate chain id %d", apperrors.ErrConflict, chainID),
			}
		}
		chains[chainID] = chain
	}

	c := newCatalog(dir, chains)
	logger.Info("Chain catalog built",
		zap.String("dir", dir),
		zap.Int("chains", c.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return c, nil
}

func newCatalog(dir string, chains map[uint64]entity.Chain) *Catalog {
	ids := make([]uint64, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	// Lowest chain id wins when short names collide.
	byShortName := make(map[string]uint64, len(chains))
	for _, id := range ids {
		key := strings.ToLower(chains[id].ShortName)
		if _, taken := byShortName[key]; !taken {
			byShortName[key] = id
		}
	}

	return &Catalog{
		dir:         dir,
		chains:      chains,
		ids:         ids,
		byShortName: byShortName,
	}
}

// Dir returns the directory the catalog was built from.
func (c *Catalog) Dir() string {
	return c.dir
}

// Get returns a copy of the chain with the given id.
func (c *Catalog) Get(chainID uint64) (entity.Chain, bool) {
	chain, ok := c.chains[chainID]
	if !ok {
		return entity.Chain{}, false
	}
	return chain.Clone(), true
}

// GetByShortName looks a chain up by its short name, case-insensitively.
func (c *Catalog) GetByShortName(shortName string) (entity.Chain, bool) {
	id, ok := c.byShortName[strings.ToLower(shortName)]
	if !ok {
		return entity.Chain{}, false
	}
	return c.Get(id)
}

// Len returns the number of chains.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs returns all chain ids in ascending order.
func (c *Catalog) IDs() []uint64 {
	return slices.Clone(c.ids)
}

// All returns copies of every chain, ordered by chain id.
func (c *Catalog) All() []entity.Chain {
	out := make([]entity.Chain, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.chains[id].Clone())
	}
	return out
}
