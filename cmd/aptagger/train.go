package main

import (
	"github.com/cours-de-latin/aptagger"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// statusGap is the number of sentences between two progress lines.
const statusGap = 500

type trainArgs struct {
	Corpus             string  `arg:"positional,required" help:"tagged corpus, one sentence per line"`
	Model              string  `arg:"positional,required" help:"model file to write (.gz and .sz are compressed)"`
	Iterations         int     `arg:"--iterations" help:"number of training epochs"`
	FrequencyThreshold int     `arg:"--frequency-threshold" help:"occurrences a word must exceed to enter the tag dictionary"`
	AmbiguityThreshold float64 `arg:"--ambiguity-threshold" help:"minimum share of a word's majority tag for the tag dictionary"`
	Seed               int64   `arg:"--seed" help:"seed of the shuffle between epochs"`
	RandomSeed         bool    `arg:"--random-seed" help:"seed the shuffle from the clock"`
	NoShuffle          bool    `arg:"--no-shuffle" help:"keep the corpus order in every epoch"`
	Verbose            bool    `arg:"-v,--verbose" help:"log debug output"`

	env *env `arg:"-"`
}

func newTrainArgs(e *env) *trainArgs {
	defaults := aptagger.DefaultTrainOptions()
	return &trainArgs{
		Iterations:         defaults.Iterations,
		FrequencyThreshold: defaults.Dictionary.FrequencyThreshold,
		AmbiguityThreshold: defaults.Dictionary.AmbiguityThreshold,
		Seed:               defaults.Seed,
		env:                e,
	}
}

func (args *trainArgs) options() aptagger.TrainOptions {
	return aptagger.TrainOptions{
		Iterations: args.Iterations,
		Dictionary: aptagger.DictionaryOptions{
			FrequencyThreshold: args.FrequencyThreshold,
			AmbiguityThreshold: args.AmbiguityThreshold,
		},
		Seed:       args.Seed,
		RandomSeed: args.RandomSeed,
		NoShuffle:  args.NoShuffle,
		Progress:   args.logProgress,
	}
}

// Validate implements cmdline.Validator
func (args *trainArgs) Validate() error {
	return args.options().Validate()
}

func (args *trainArgs) logProgress(p aptagger.Progress) {
	log := args.env.log
	switch p.Kind {
	case aptagger.EpochStart:
		log.Infof("iteration %d/%d", p.Epoch+1, p.Epochs)
	case aptagger.SentenceTrained:
		n := p.Sentence + 1
		if n != p.Sentences && n%statusGap != 0 {
			log.Debugf("... %d/%d", n, p.Sentences)
			return
		}
		log.Infof("... %s/%s: %s", humanize.Comma(int64(n)), humanize.Comma(int64(p.Sentences)), p.Accuracy())
	case aptagger.EpochEnd:
		log.Debugf("iteration %d/%d done: %s", p.Epoch+1, p.Epochs, p.Accuracy())
	case aptagger.Averaging:
		log.Info("averaging")
	}
}

func (args *trainArgs) Handle() error {
	args.env.setVerbose(args.Verbose)
	log := args.env.log

	log.Infof("reading sentences from %s", args.Corpus)
	sentences, err := aptagger.ReadCorpus(args.env.fs, args.Corpus)
	if err != nil {
		return err
	}
	log.Infof("training on %s sentences", humanize.Comma(int64(len(sentences))))

	tagger, err := aptagger.Train(sentences, args.options())
	if err != nil {
		return errors.Wrap(err, "training")
	}

	log.Infof("saving to %s", args.Model)
	if err := aptagger.Save(args.env.fs, args.Model, tagger); err != nil {
		return err
	}
	log.Infow("done", "features", tagger.Model().NumFeatures(),
		"labels", len(tagger.Model().Labels()), "dictionary", len(tagger.Dictionary()))
	return nil
}
