package setalgebra

import "github.com/aphyr/hangman/index"

var testCorpus = index.Corpus{"CAB", "CAR", "CAT", "CUT", "CATS", "CROW", "CROWN"}

func buildTestIndex() *index.Index { return index.Build(testCorpus) }

func lengthTerm(n uint) index.Term { return index.Length(n) }

func positionTerm(i uint, c rune) index.Term { return index.Position(i, c) }
