package chainlist

import (
	"fmt"
	"strconv"
	"strings"

	"chainlist-catalog/internal/pkg/apperrors"
)

// DefaultDataDir is where ethereum-lists/chains keeps its per-chain files, relative
// to the working directory.
const DefaultDataDir = "ethereum-list/chains/_data/chains"

const (
	fileNamePrefix = "eip155-"
	fileNameSuffix = ".json"
)

// FileName returns the name of the data file holding chainID.
func FileName(chainID uint64) string {
	return fileNamePrefix + strconv.FormatUint(chainID, 10) + fileNameSuffix
}

// ParseFileName extracts the chain id from a file name of the form eip155-<id>.json.
// The id must be unsigned decimal digits that fit in a uint64.
func ParseFileName(name string) (uint64, error) {
	digits, ok := strings.CutPrefix(name, fileNamePrefix)
	if ok {
		digits, ok = strings.CutSuffix(digits, fileNameSuffix)
	}
	if !ok {
		return 0, fmt.Errorf("%w: file name %q is not of the form %s<chain id>%s",
			apperrors.ErrInvalidInput, name, fileNamePrefix, fileNameSuffix,
		)
	}

	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%w: chain id %q in file name %q is not a decimal number",
			apperrors.ErrInvalidInput, digits, name,
		)
	}

	chainID, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: chain id in file name %q does not fit in uint64: %v",
			apperrors.ErrInvalidInput, name, err,
		)
	}
	return chainID, nil
}
