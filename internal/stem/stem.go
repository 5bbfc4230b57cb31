// Package stem wraps the Snowball-compatible stemmers blevesearch vendors
// (github.com/blevesearch/snowballstem) behind the closed StemAlgorithm
// enumeration spec §3/§9 requires, and builds the reverse-stem Stem Index
// the container builder consults during its alias pass (spec §4.3).
package stem

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/french"
	"github.com/blevesearch/snowballstem/german"
	"github.com/blevesearch/snowballstem/russian"
	"github.com/blevesearch/snowballstem/spanish"

	"github.com/statidx/statidx/internal/docmodel"
)

var stemFuncs = map[docmodel.StemAlgorithm]func(*snowballstem.Env) bool{
	docmodel.StemEnglish: english.Stem,
	docmodel.StemSpanish: spanish.Stem,
	docmodel.StemFrench:  french.Stem,
	docmodel.StemGerman:  german.Stem,
	docmodel.StemRussian: russian.Stem,
}

// Stem reduces word to its root form under algorithm. StemNone (or any
// algorithm outside the closed set) returns word unchanged.
func Stem(algorithm docmodel.StemAlgorithm, word string) string {
	stepFn, ok := stemFuncs[algorithm]
	if !ok {
		return word
	}
	env := snowballstem.NewEnv(word)
	stepFn(env)
	return env.Current()
}
