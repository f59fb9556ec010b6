// Package corpus loads the newline-delimited word lists spec.md §6
// describes as the CLI's positional and word-list file arguments.
package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/aphyr/hangman/index"
)

// Load reads path as a newline-delimited word list: each line is
// upper-cased and trimmed of surrounding whitespace, and blank lines are
// skipped.
func Load(path string) (index.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words index.Corpus
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadMany loads and concatenates every path in order.
func LoadMany(paths []string) (index.Corpus, error) {
	var all index.Corpus
	for _, p := range paths {
		words, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, words...)
	}
	return all, nil
}
