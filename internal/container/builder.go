package container

import (
	"github.com/statidx/statidx/internal/docmodel"
	"github.com/statidx/statidx/internal/stem"
	"github.com/statidx/statidx/internal/tokenize"
)

// BuildConfig carries the builder knobs spec §6 names. Zero values are not
// valid; use DefaultBuildConfig and override from there.
type BuildConfig struct {
	MinimumIndexedSubstringLength          uint8
	MinimumIndexIdeographicSubstringLength uint8
	ExcerptsPerResult                      uint32
}

// DefaultBuildConfig returns the defaults named in spec §6.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		MinimumIndexedSubstringLength:          3,
		MinimumIndexIdeographicSubstringLength: 1,
		ExcerptsPerResult:                      8,
	}
}

// Fill populates an initially empty Store from entries, in document order,
// implementing spec §4.3's container-filling algorithm: for every document,
// for Title then Contents, for every word, a direct insert followed by a
// prefix alias pass and a reverse-stem alias pass. Both alias passes refuse
// to overwrite an existing alias entry — the first document to exercise a
// prefix or stem fixes its score for the lifetime of the index.
//
// Fill is single-threaded and deterministic: running it twice over the
// same entries and stems produces byte-identical containers.
func Fill(cfg BuildConfig, entries []docmodel.NormalizedEntry, stems *stem.Index, store *Store) {
	for entryIndex, entry := range entries {
		titleWords := tokenize.Tokenize(entry.Title)

		for _, list := range []struct {
			source docmodel.SourceTag
			words  []docmodel.AnnotatedWord
		}{
			{docmodel.SourceTitle, titleWords},
			{docmodel.SourceContents, entry.ContentWords},
		} {
			for wordIndex, word := range list.words {
				normalizedWord, ok := tokenize.Normalize(word.Word)
				if !ok {
					continue
				}

				fillResult(cfg, store, normalizedWord, wordIndex, entryIndex, word, list.source)
				fillPrefixAliases(cfg, store, normalizedWord)
				fillStemAliases(entry, stems, store, normalizedWord)
			}
		}
	}
}

func fillResult(
	cfg BuildConfig,
	store *Store,
	normalizedWord string,
	wordIndex, entryIndex int,
	word docmodel.AnnotatedWord,
	source docmodel.SourceTag,
) {
	c := store.GetOrCreate(normalizedWord)

	result, ok := c.Results[entryIndex]
	if !ok {
		result = &SearchResult{}
		c.Results[entryIndex] = result
	}

	if cfg.ExcerptsPerResult == 0 {
		return
	}

	result.Excerpts = append(result.Excerpts, Excerpt{
		WordIndex:           wordIndex,
		Source:              source,
		InternalAnnotations: word.InternalAnnotations,
		Fields:              word.Fields,
	})
}

// fillPrefixAliases implements spec §4.3 step 2B: for every proper prefix
// of normalizedWord from the skip length up to (but not including) its
// full length, ensure a container exists at that prefix and record an
// alias back to normalizedWord, scored by how much of the word the prefix
// covers.
func fillPrefixAliases(cfg BuildConfig, store *Store, normalizedWord string) {
	runes := []rune(normalizedWord)
	length := len(runes)

	skip := int(cfg.MinimumIndexedSubstringLength)
	if tokenize.IsCJKIdeographic(normalizedWord) {
		skip = int(cfg.MinimumIndexIdeographicSubstringLength)
	}

	for k := skip; k < length; k++ {
		prefix := string(runes[:k])
		c := store.GetOrCreate(prefix)
		if _, exists := c.Aliases[normalizedWord]; exists {
			continue
		}
		c.Aliases[normalizedWord] = prefixScore(length, k)
	}
}

// prefixScore computes PREFIX_SCORE - (wordLength - prefixLength), floored
// at zero (spec §3 invariant 3).
func prefixScore(wordLength, prefixLength int) uint8 {
	diff := wordLength - prefixLength
	if diff >= PrefixScore {
		return 0
	}
	return uint8(PrefixScore - diff)
}

// fillStemAliases implements spec §4.3 step 2C: if the document carries a
// stemmer, look up every surface word sharing normalizedWord's stem and
// record a STEM_SCORE alias from each of them back to normalizedWord.
func fillStemAliases(entry docmodel.NormalizedEntry, stems *stem.Index, store *Store, normalizedWord string) {
	if entry.StemAlgorithm == docmodel.StemNone || stems == nil {
		return
	}

	for _, reverseStem := range stems.ReverseStems(entry.StemAlgorithm, normalizedWord) {
		if reverseStem == normalizedWord {
			continue
		}
		c := store.GetOrCreate(reverseStem)
		if _, exists := c.Aliases[normalizedWord]; exists {
			continue
		}
		c.Aliases[normalizedWord] = StemScore
	}
}
