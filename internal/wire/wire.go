// Package wire implements the statidx binary index format: a length-
// prefixed, little-endian encoding of a document table and its Container
// Store (spec §7 "Serialization format"). It is the realization of stork's
// parse_bytes_as_index / add_sidecar_bytes_to_index surface.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/statidx/statidx/internal/container"
	"github.com/statidx/statidx/internal/docmodel"
	staterrors "github.com/statidx/statidx/internal/errors"
	"github.com/statidx/statidx/internal/index"
)

// Magic is the 4-byte file identifier every encoded index and sidecar
// chunk begins with.
const Magic = "SIDX"

// Version is the format version this package reads and writes. A bump is
// required any time the byte layout below changes incompatibly.
const Version uint8 = 1

// Encode serializes idx into the wire format. The output is deterministic:
// encoding the same Index twice produces byte-identical output, because
// containers are written in Store.SortedKeys order and each container's
// results and aliases are written in sorted order too.
func Encode(idx *index.Index) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(Version)

	if err := writeDocuments(&buf, idx.Documents); err != nil {
		return nil, staterrors.NewBuildError(staterrors.ErrCodeBuildWrite, "encoding document table", err)
	}
	if err := writeStore(&buf, idx.Store); err != nil {
		return nil, staterrors.NewBuildError(staterrors.ErrCodeBuildWrite, "encoding container store", err)
	}
	return buf.Bytes(), nil
}

// Decode parses data produced by Encode back into an Index (spec §7:
// bad magic, unsupported version, and truncated payloads are each reported
// as a distinct IndexParseError).
func Decode(data []byte) (*index.Index, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeTruncatedPayload, "reading magic", err)
	}
	if string(magic) != Magic {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeBadMagic, fmt.Sprintf("unrecognized magic %q", magic), nil)
	}

	version, err := r.ReadByte()
	if err != nil {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeTruncatedPayload, "reading version", err)
	}
	if version != Version {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %d (want %d)", version, Version), nil)
	}

	documents, err := readDocuments(r)
	if err != nil {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeTruncatedPayload, "reading document table", err)
	}

	store, err := readStore(r)
	if err != nil {
		return nil, staterrors.NewIndexParseError(staterrors.ErrCodeTruncatedPayload, "reading container store", err)
	}

	return &index.Index{Documents: documents, Store: store}, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func writeUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func writeByte(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func readByte(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeFields(w io.Writer, fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := writeUint32(w, uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := writeString(w, k); err != nil {
			return err
		}
		if err := writeString(w, fields[k]); err != nil {
			return err
		}
	}
	return nil
}

func readFields(r io.Reader) (map[string]string, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	fields := make(map[string]string, n)
	for i := uint32(0); i < n; i++ {
		k, err := readString(r)
		if err != nil {
			return nil, err
		}
		v, err := readString(r)
		if err != nil {
			return nil, err
		}
		fields[k] = v
	}
	return fields, nil
}

func writeStrings(w io.Writer, ss []string) error {
	if err := writeUint32(w, uint32(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func readStrings(r io.Reader) ([]string, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, n)
	for i := range out {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func writeDocuments(w io.Writer, documents []docmodel.Document) error {
	if err := writeUint32(w, uint32(len(documents))); err != nil {
		return err
	}
	for _, doc := range documents {
		if err := writeString(w, doc.Title); err != nil {
			return err
		}
		if err := writeString(w, doc.URL); err != nil {
			return err
		}
		if err := writeFields(w, doc.Fields); err != nil {
			return err
		}
		if err := writeString(w, doc.Body); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(len(doc.ContentWords))); err != nil {
			return err
		}
		for _, span := range doc.ContentWords {
			if err := writeUint32(w, span.Offset); err != nil {
				return err
			}
			if err := writeUint16(w, span.Length); err != nil {
				return err
			}
		}
	}
	return nil
}

func readDocuments(r io.Reader) ([]docmodel.Document, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	documents := make([]docmodel.Document, n)
	for i := range documents {
		title, err := readString(r)
		if err != nil {
			return nil, err
		}
		url, err := readString(r)
		if err != nil {
			return nil, err
		}
		fields, err := readFields(r)
		if err != nil {
			return nil, err
		}
		body, err := readString(r)
		if err != nil {
			return nil, err
		}
		wordCount, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		spans := make([]docmodel.WordSpan, wordCount)
		for j := range spans {
			offset, err := readUint32(r)
			if err != nil {
				return nil, err
			}
			length, err := readUint16(r)
			if err != nil {
				return nil, err
			}
			spans[j] = docmodel.WordSpan{Offset: offset, Length: length}
		}
		documents[i] = docmodel.Document{Title: title, URL: url, Fields: fields, Body: body, ContentWords: spans}
	}
	return documents, nil
}

func writeStore(w io.Writer, store *container.Store) error {
	keys := store.SortedKeys()
	if err := writeUint32(w, uint32(len(keys))); err != nil {
		return err
	}
	for _, key := range keys {
		c := store.Get(key)
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeContainer(w, c); err != nil {
			return err
		}
	}
	return nil
}

func readStore(r io.Reader) (*container.Store, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	store := container.NewStore()
	for i := uint32(0); i < n; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, err
		}
		c, err := readContainer(r)
		if err != nil {
			return nil, err
		}
		store.Set(key, c)
	}
	return store, nil
}

func writeContainer(w io.Writer, c *container.Container) error {
	docs := make([]int, 0, len(c.Results))
	for doc := range c.Results {
		docs = append(docs, doc)
	}
	sort.Ints(docs)

	if err := writeUint32(w, uint32(len(docs))); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := writeUint32(w, uint32(doc)); err != nil {
			return err
		}
		if err := writeExcerpts(w, c.Results[doc].Excerpts); err != nil {
			return err
		}
	}

	targets := make([]string, 0, len(c.Aliases))
	for target := range c.Aliases {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	if err := writeUint32(w, uint32(len(targets))); err != nil {
		return err
	}
	for _, target := range targets {
		if err := writeString(w, target); err != nil {
			return err
		}
		if err := writeByte(w, c.Aliases[target]); err != nil {
			return err
		}
	}
	return nil
}

func readContainer(r io.Reader) (*container.Container, error) {
	c := container.NewContainer()

	resultCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < resultCount; i++ {
		doc, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		excerpts, err := readExcerpts(r)
		if err != nil {
			return nil, err
		}
		c.Results[int(doc)] = &container.SearchResult{Excerpts: excerpts}
	}

	aliasCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < aliasCount; i++ {
		target, err := readString(r)
		if err != nil {
			return nil, err
		}
		score, err := readByte(r)
		if err != nil {
			return nil, err
		}
		c.Aliases[target] = score
	}

	return c, nil
}

func writeExcerpts(w io.Writer, excerpts []container.Excerpt) error {
	if err := writeUint32(w, uint32(len(excerpts))); err != nil {
		return err
	}
	for _, ex := range excerpts {
		if err := writeUint32(w, uint32(ex.WordIndex)); err != nil {
			return err
		}
		if err := writeByte(w, uint8(ex.Source)); err != nil {
			return err
		}
		if err := writeStrings(w, ex.InternalAnnotations); err != nil {
			return err
		}
		if err := writeFields(w, ex.Fields); err != nil {
			return err
		}
	}
	return nil
}

func readExcerpts(r io.Reader) ([]container.Excerpt, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	excerpts := make([]container.Excerpt, n)
	for i := range excerpts {
		wordIndex, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		source, err := readByte(r)
		if err != nil {
			return nil, err
		}
		annotations, err := readStrings(r)
		if err != nil {
			return nil, err
		}
		fields, err := readFields(r)
		if err != nil {
			return nil, err
		}
		excerpts[i] = container.Excerpt{
			WordIndex:           int(wordIndex),
			Source:              docmodel.SourceTag(source),
			InternalAnnotations: annotations,
			Fields:              fields,
		}
	}
	return excerpts, nil
}
