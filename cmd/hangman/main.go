// Command hangman plays (or simulates) games of Hangman using the
// bitset-index strategy core.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	hangman "github.com/aphyr/hangman"
	"github.com/aphyr/hangman/corpus"
	"github.com/aphyr/hangman/game"
	"github.com/aphyr/hangman/index"
	"github.com/aphyr/hangman/referee"
	"github.com/aphyr/hangman/strategy"
)

// playOneGame runs secret to completion against a fresh referee.Game,
// printing each guess as it's made.
func playOneGame(ctx context.Context, s *strategy.Strategy, secret string, maxWrongGuesses int, logger *hangman.Logger) (won bool, score float64, guesses int, err error) {
	g := referee.New(secret, maxWrongGuesses)
	for g.Status() == game.KeepGuessing {
		guess, err := s.NextGuess(ctx, g)
		if err != nil {
			return false, 0, guesses, err
		}
		g.MakeGuess(guess)
		guesses++
		fmt.Printf("  guess %d: %s (score %.1f)\n", guesses, guess, g.CurrentScore())
	}
	won = g.Status() == game.Won
	score = g.CurrentScore()
	logger.LogGameOver(ctx, secret, won, score, guesses)
	return won, score, guesses, nil
}

func loadCorpus(args []string) (index.Corpus, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("hangman: at least one corpus file is required")
	}
	return corpus.LoadMany(args)
}

func buildStrategy(ctx context.Context, logger *hangman.Logger, words index.Corpus, threads, cacheSize, sampleSize int, targetCharP float64) (*strategy.Strategy, error) {
	var idx *index.Index
	var err error
	if threads > 0 {
		idx, err = index.BuildParallel(ctx, words, threads)
	} else {
		idx = index.Build(words)
	}
	logger.LogIndexBuild(ctx, len(words), threads, err)
	if err != nil {
		return nil, err
	}

	cfg := strategy.DefaultConfig()
	if cacheSize > 0 {
		cfg.CacheSize = cacheSize
	}
	if sampleSize > 0 {
		cfg.SampleSize = sampleSize
	}
	if targetCharP > 0 {
		cfg.TargetCharP = targetCharP
	}
	cfg.Threads = threads

	return strategy.New(words, idx, cfg)
}

func main() {
	var (
		tries       = 5
		cacheSize   = 512
		sampleSize  = 65536
		targetCharP = 0.7
		threads     = 1
		count       = 0
		verbose     = false
	)

	logger := func() *hangman.Logger {
		if verbose {
			return hangman.NewTextLogger(0)
		}
		return hangman.NoopLogger()
	}

	cmd := &cli.Command{
		Name:  "hangman",
		Usage: "play Hangman with a bitset-indexed guessing strategy",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "tries",
				Aliases:     []string{"t"},
				Value:       5,
				Usage:       "number of wrong guesses allowed before a loss",
				Destination: &tries,
			},
			&cli.IntFlag{
				Name:        "cache",
				Aliases:     []string{"c"},
				Value:       512,
				Usage:       "LU cache capacity, entries keyed by game fingerprint",
				Destination: &cacheSize,
			},
			&cli.IntFlag{
				Name:        "samples",
				Aliases:     []string{"s"},
				Value:       65536,
				Usage:       "number of candidate words to sample per guess",
				Destination: &sampleSize,
			},
			&cli.Float64Flag{
				Name:        "p",
				Aliases:     []string{"target-p"},
				Value:       0.7,
				Usage:       "target character coverage probability",
				Destination: &targetCharP,
			},
			&cli.IntFlag{
				Name:        "n",
				Value:       0,
				Usage:       "number of games to run, 0 means all available secrets",
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "threads",
				Value:       1,
				Usage:       "worker threads used to build the index, 0 disables parallel build",
				Destination: &threads,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Value:       false,
				Usage:       "log index-build and game-over details",
				Destination: &verbose,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play one game against a given secret word",
				ArgsUsage: "<corpus-file> [wordlist-files...] <secret>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) < 2 {
						return cli.Exit("play requires at least one corpus file and a secret word", 1)
					}
					secret := args[len(args)-1]
					words, err := loadCorpus(args[:len(args)-1])
					if err != nil {
						return cli.Exit(err, 1)
					}

					l := logger()
					s, err := buildStrategy(ctx, l, words, threads, cacheSize, sampleSize, targetCharP)
					if err != nil {
						return cli.Exit(err, 1)
					}

					won, score, guesses, err := playOneGame(ctx, s, secret, tries, l)
					if err != nil {
						return cli.Exit(err, 1)
					}
					outcome := "lost"
					if won {
						outcome = "won"
					}
					fmt.Printf("%s in %d guesses, score %.1f\n", outcome, guesses, score)
					return nil
				},
			},
			{
				Name:      "sim",
				Usage:     "simulate games for every given secret (or every corpus word)",
				ArgsUsage: "<corpus-file> [wordlist-files...] [secrets...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) < 1 {
						return cli.Exit("sim requires at least one corpus file", 1)
					}

					var corpusFiles, secrets []string
					for _, a := range args {
						if _, err := os.Stat(a); err == nil {
							corpusFiles = append(corpusFiles, a)
						} else {
							secrets = append(secrets, a)
						}
					}
					if len(corpusFiles) == 0 {
						return cli.Exit("sim requires at least one corpus file", 1)
					}

					words, err := loadCorpus(corpusFiles)
					if err != nil {
						return cli.Exit(err, 1)
					}
					if len(secrets) == 0 {
						secrets = []string(words)
					}
					if count > 0 && count < len(secrets) {
						secrets = secrets[:count]
					}

					l := logger()
					s, err := buildStrategy(ctx, l, words, threads, cacheSize, sampleSize, targetCharP)
					if err != nil {
						return cli.Exit(err, 1)
					}

					var bar *progressbar.ProgressBar
					if verbose {
						bar = progressbar.DefaultSilent(int64(len(secrets)))
					} else {
						bar = progressbar.Default(int64(len(secrets)))
					}

					wins, totalScore, totalGuesses := 0, 0.0, 0
					for _, secret := range secrets {
						won, score, guesses, err := playOneGame(ctx, s, secret, tries, l)
						if err != nil {
							return cli.Exit(err, 1)
						}
						if won {
							wins++
						}
						totalScore += score
						totalGuesses += guesses
						bar.Add(1)
					}
					fmt.Printf("\n%d/%d won, mean score %.2f, mean guesses %.2f\n",
						wins, len(secrets), totalScore/float64(len(secrets)), float64(totalGuesses)/float64(len(secrets)))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
