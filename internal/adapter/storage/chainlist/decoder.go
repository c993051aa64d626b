package chainlist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	dto "chainlist-catalog/internal/adapter/storage/chainlist/dto"
	"chainlist-catalog/internal/domain/entity"
	"chainlist-catalog/internal/pkg/apperrors"

	"github.com/go-json-experiment/json"
)

// Decode reads one chain document from r. Any failure is an *apperrors.Error:
// KindFile when r cannot be read, KindDeserialization when the bytes are not a
// complete, well-formed chain document. Unknown keys are ignored. Key names
// match exactly, and duplicate keys, invalid UTF-8 or trailing data are rejected.
func Decode(r io.Reader) (entity.Chain, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return entity.Chain{}, apperrors.NewFileError(err)
	}

	var raw dto.ChainRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return entity.Chain{}, apperrors.NewDeserializationError(err)
	}

	if err := raw.Validate(); err != nil {
		return entity.Chain{}, apperrors.NewDeserializationError(err)
	}

	return toDomainChain(&raw), nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (entity.Chain, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens <dir>/eip155-<chainID>.json and decodes it.
func DecodeFile(dir string, chainID uint64) (entity.Chain, error) {
	return decodePath(filepath.Join(dir, FileName(chainID)))
}

func decodePath(path string) (entity.Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.Chain{}, apperrors.NewFileError(err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode renders a chain in the ethereum-lists wire format. Decoding the output
// yields a chain equal to c.
func Encode(c entity.Chain) ([]byte, error) {
	data, err := json.Marshal(toRawChain(c))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode chain %d: %v", apperrors.ErrInternal, c.ChainID, err)
	}
	return data, nil
}

// ToWire returns the wire DTO for c, for encoders other than JSON.
func ToWire(c entity.Chain) *dto.ChainRaw {
	return toRawChain(c)
}
