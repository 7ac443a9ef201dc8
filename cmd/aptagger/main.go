// Command aptagger trains, evaluates and applies an averaged perceptron
// part-of-speech tagger.
//
//	aptagger train CORPUS MODEL     learn a model from a tagged corpus
//	aptagger tag MODEL WORD...      print WORD_TAG pairs
//	aptagger test MODEL CORPUS      print correct/total = percentage%
//
// A corpus holds one sentence per line; tokens are separated by a single
// space and each token is a word and a tag joined by an underscore, e.g.
// "Simple_JJ is_VBZ better_JJR".
package main

import (
	"io"
	"os"

	"github.com/cours-de-latin/aptagger/internal/cmdline"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// env carries what the command handlers share.
type env struct {
	fs     afero.Fs
	stdout io.Writer
	level  zap.AtomicLevel
	log    *zap.SugaredLogger
}

func newEnv(fs afero.Fs, stdout, stderr io.Writer) *env {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.Lock(zapcore.AddSync(stderr)), level)
	return &env{
		fs:     fs,
		stdout: stdout,
		level:  level,
		log:    zap.New(core).Sugar(),
	}
}

func (e *env) setVerbose(verbose bool) {
	if verbose {
		e.level.SetLevel(zapcore.DebugLevel)
	}
}

func commands(e *env) []cmdline.Command {
	return []cmdline.Command{
		{
			Name:     "tag",
			Synopsis: "tag the given words with a model",
			Args:     &tagArgs{env: e},
		},
		{
			Name:     "train",
			Synopsis: "train a model from a tagged corpus",
			Args:     newTrainArgs(e),
		},
		{
			Name:     "test",
			Synopsis: "report the accuracy of a model on a tagged corpus",
			Args:     &testArgs{env: e},
		},
	}
}

func main() {
	e := newEnv(afero.NewOsFs(), os.Stdout, os.Stderr)
	defer e.log.Sync()
	cmdline.MustDispatch(commands(e)...)
}
