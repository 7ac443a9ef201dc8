package aptagger

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// maxLineSize bounds the length of a single corpus line.
const maxLineSize = 1 << 20

// ReadCorpus reads one tagged sentence per line from path on fs. Blank lines
// are skipped. The first malformed line aborts the load with a *FormatError
// carrying its line number.
func ReadCorpus(fs afero.Fs, path string) ([]TaggedSentence, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, ioError("open corpus", path, err)
	}
	defer f.Close()

	sentences, err := ParseCorpus(f)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return nil, err
	}
	return sentences, nil
}

// ParseCorpus is ReadCorpus on an already open reader.
func ParseCorpus(r io.Reader) ([]TaggedSentence, error) {
	var sentences []TaggedSentence
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		s, err := ParseSentence(text)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = line
			}
			return nil, err
		}
		sentences = append(sentences, s)
	}
	if err := sc.Err(); err != nil {
		return nil, ioError("read corpus", "", err)
	}
	return sentences, nil
}
