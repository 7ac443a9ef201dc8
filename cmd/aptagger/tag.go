package main

import (
	"fmt"

	"github.com/cours-de-latin/aptagger"
)

type tagArgs struct {
	Model   string   `arg:"positional,required" help:"model file written by train"`
	Words   []string `arg:"positional" help:"words to tag"`
	Verbose bool     `arg:"-v,--verbose" help:"log debug output"`

	env *env `arg:"-"`
}

func (args *tagArgs) Handle() error {
	args.env.setVerbose(args.Verbose)

	tagger, err := aptagger.Load(args.env.fs, args.Model)
	if err != nil {
		return err
	}
	args.env.log.Debugw("model loaded", "path", args.Model,
		"features", tagger.Model().NumFeatures(), "labels", len(tagger.Model().Labels()))

	tags, err := tagger.Tag(args.Words)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(args.env.stdout, aptagger.FormatSentence(args.Words, tags))
	return err
}
