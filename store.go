package aptagger

import (
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tinylib/msgp/msgp"
)

// maxEncodeBuffer caps the write buffer of Encode.
const maxEncodeBuffer = 1 << 20

// modelFileMode is the permission of files written by Save.
const modelFileMode = 0644

// Encode writes the tag dictionary, the weights and the labels as three
// consecutive MessagePack objects. A Tagger without a model is a ConfigError.
func (t *Tagger) Encode(w io.Writer) error {
	if t.model == nil {
		return configErrorf("model", "tagger has no model")
	}
	objects := []interface {
		msgp.Encodable
		msgp.Sizer
	}{
		dictionaryMsg(t.dict),
		weightsMsg(t.model.weights),
		labelsMsg(t.model.labels),
	}

	var size int
	for _, o := range objects {
		size += o.Msgsize()
	}
	if size > maxEncodeBuffer {
		size = maxEncodeBuffer
	}

	en := msgp.NewWriterSize(w, size)
	for _, o := range objects {
		if err := o.EncodeMsg(en); err != nil {
			return err
		}
	}
	return en.Flush()
}

// DecodeTagger reads a Tagger written by Encode. Decoding failures are
// *IOError; an empty label set is a ConfigError.
func DecodeTagger(r io.Reader) (*Tagger, error) {
	dc := msgp.NewReader(r)
	var (
		dict    dictionaryMsg
		weights weightsMsg
		labels  labelsMsg
	)
	if err := dict.DecodeMsg(dc); err != nil {
		return nil, ioError("decode tag dictionary", "", err)
	}
	if err := weights.DecodeMsg(dc); err != nil {
		return nil, ioError("decode weights", "", err)
	}
	if err := labels.DecodeMsg(dc); err != nil {
		return nil, ioError("decode labels", "", err)
	}
	model, err := NewModel(weights, labels)
	if err != nil {
		return nil, err
	}
	return &Tagger{model: model, dict: TagDictionary(dict)}, nil
}

// Save writes t to path on fs. Paths ending in .gz are gzip compressed and
// paths ending in .sz are snappy compressed. The model is written to a
// temporary file next to path and renamed into place, so a failed save
// leaves any previous file untouched. The saved file has mode 0644.
func Save(fs afero.Fs, path string, t *Tagger) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(fs, dir, "."+base+".tmp*")
	if err != nil {
		return ioError("create model", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			fs.Remove(tmp.Name())
		}
	}()

	w := compressWriter(path, tmp)
	if err := t.Encode(w); err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			return err
		}
		return ioError("write model", path, err)
	}
	if err := w.Close(); err != nil {
		return ioError("write model", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return ioError("sync model", path, err)
	}
	if err := tmp.Close(); err != nil {
		return ioError("close model", path, err)
	}
	if err := fs.Chmod(tmp.Name(), modelFileMode); err != nil {
		return ioError("chmod model", path, err)
	}
	if err := fs.Rename(tmp.Name(), path); err != nil {
		return ioError("rename model", path, err)
	}
	return nil
}

// Load reads a Tagger saved with Save.
func Load(fs afero.Fs, path string) (*Tagger, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, ioError("open model", path, err)
	}
	defer f.Close()

	r, err := decompressReader(path, f)
	if err != nil {
		return nil, ioError("open model", path, err)
	}
	defer r.Close()

	t, err := DecodeTagger(r)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return nil, err
	}
	return t, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// compressWriter picks a compressor from the extension of path.
func compressWriter(path string, w io.Writer) io.WriteCloser {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewWriter(w)
	case strings.HasSuffix(path, ".sz"):
		return snappy.NewBufferedWriter(w)
	default:
		return nopWriteCloser{w}
	}
}

// decompressReader picks a decompressor from the extension of path.
func decompressReader(path string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(path, ".sz"):
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}
