package wire

import (
	staterrors "github.com/statidx/statidx/internal/errors"
	"github.com/statidx/statidx/internal/index"
)

// AddSidecarBytes decodes a sidecar chunk (built independently, with its
// own document indices starting at zero) and splices it onto idx: the
// sidecar's documents are appended to idx.Documents, its Store's result
// document indices are shifted by the prior document count, and the
// shifted Store is merged into idx.Store with earliest-wins alias
// semantics (spec §4.5, §7 "Sidecar files").
//
// idx is mutated in place. AddSidecarBytes never merges a sidecar whose
// document table would overflow a uint32 document index; that failure
// surfaces as ErrCodeSidecarOverlap.
func AddSidecarBytes(idx *index.Index, data []byte) error {
	sidecar, err := Decode(data)
	if err != nil {
		return err
	}

	offset := len(idx.Documents)
	if offset > 0 && len(sidecar.Documents) > 0 {
		const maxDocIndex = 1 << 32
		if offset+len(sidecar.Documents) > maxDocIndex {
			return staterrors.NewIndexParseError(staterrors.ErrCodeSidecarOverlap,
				"sidecar document table would overflow the document index space", nil)
		}
	}

	idx.Documents = append(idx.Documents, sidecar.Documents...)
	idx.Store.Merge(sidecar.Store.WithOffsetDocIndices(offset))
	return nil
}
