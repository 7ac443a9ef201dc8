package main

import (
	"fmt"

	"github.com/cours-de-latin/aptagger"
	humanize "github.com/dustin/go-humanize"
)

type testArgs struct {
	Model   string `arg:"positional,required" help:"model file written by train"`
	Corpus  string `arg:"positional,required" help:"tagged corpus, one sentence per line"`
	Verbose bool   `arg:"-v,--verbose" help:"log debug output"`

	env *env `arg:"-"`
}

func (args *testArgs) Handle() error {
	args.env.setVerbose(args.Verbose)
	log := args.env.log

	log.Infof("reading sentences from %s", args.Corpus)
	sentences, err := aptagger.ReadCorpus(args.env.fs, args.Corpus)
	if err != nil {
		return err
	}

	log.Infof("loading tagger from %s", args.Model)
	tagger, err := aptagger.Load(args.env.fs, args.Model)
	if err != nil {
		return err
	}

	acc, err := tagger.Evaluate(sentences)
	if err != nil {
		return err
	}
	log.Debugf("evaluated %s sentences", humanize.Comma(int64(len(sentences))))
	_, err = fmt.Fprintln(args.env.stdout, acc)
	return err
}
