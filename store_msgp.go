package aptagger

import (
	"sort"

	"github.com/tinylib/msgp/msgp"
)

// dictionaryMsg is the first object of a model file: word → tag.
type dictionaryMsg map[string]string

// EncodeMsg implements msgp.Encodable
func (d dictionaryMsg) EncodeMsg(en *msgp.Writer) error {
	if err := en.WriteMapHeader(uint32(len(d))); err != nil {
		return err
	}
	for _, word := range sortedKeys(d) {
		if err := en.WriteString(word); err != nil {
			return err
		}
		if err := en.WriteString(d[word]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsg implements msgp.Decodable
func (d *dictionaryMsg) DecodeMsg(dc *msgp.Reader) error {
	sz, err := dc.ReadMapHeader()
	if err != nil {
		return err
	}
	*d = make(dictionaryMsg, sz)
	for sz > 0 {
		sz--
		word, err := dc.ReadString()
		if err != nil {
			return err
		}
		tag, err := dc.ReadString()
		if err != nil {
			return err
		}
		(*d)[word] = tag
	}
	return nil
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (d dictionaryMsg) Msgsize() int {
	sz := msgp.MapHeaderSize
	for word, tag := range d {
		sz += msgp.StringPrefixSize + len(word) + msgp.StringPrefixSize + len(tag)
	}
	return sz
}

// weightsMsg is the second object of a model file: feature → label → weight.
type weightsMsg map[string]map[string]float64

// EncodeMsg implements msgp.Encodable
func (w weightsMsg) EncodeMsg(en *msgp.Writer) error {
	if err := en.WriteMapHeader(uint32(len(w))); err != nil {
		return err
	}
	for _, feature := range sortedKeys(w) {
		byLabel := w[feature]
		if err := en.WriteString(feature); err != nil {
			return err
		}
		if err := en.WriteMapHeader(uint32(len(byLabel))); err != nil {
			return err
		}
		for _, label := range sortedKeys(byLabel) {
			if err := en.WriteString(label); err != nil {
				return err
			}
			if err := en.WriteFloat64(byLabel[label]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeMsg implements msgp.Decodable
func (w *weightsMsg) DecodeMsg(dc *msgp.Reader) error {
	sz, err := dc.ReadMapHeader()
	if err != nil {
		return err
	}
	*w = make(weightsMsg, sz)
	for sz > 0 {
		sz--
		feature, err := dc.ReadString()
		if err != nil {
			return err
		}
		n, err := dc.ReadMapHeader()
		if err != nil {
			return err
		}
		byLabel := make(map[string]float64, n)
		for n > 0 {
			n--
			label, err := dc.ReadString()
			if err != nil {
				return err
			}
			weight, err := dc.ReadFloat64()
			if err != nil {
				return err
			}
			byLabel[label] = weight
		}
		(*w)[feature] = byLabel
	}
	return nil
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (w weightsMsg) Msgsize() int {
	sz := msgp.MapHeaderSize
	for feature, byLabel := range w {
		sz += msgp.StringPrefixSize + len(feature) + msgp.MapHeaderSize
		for label := range byLabel {
			sz += msgp.StringPrefixSize + len(label) + msgp.Float64Size
		}
	}
	return sz
}

// labelsMsg is the third object of a model file: the label set.
type labelsMsg []string

// EncodeMsg implements msgp.Encodable
func (l labelsMsg) EncodeMsg(en *msgp.Writer) error {
	if err := en.WriteArrayHeader(uint32(len(l))); err != nil {
		return err
	}
	for _, label := range l {
		if err := en.WriteString(label); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsg implements msgp.Decodable
func (l *labelsMsg) DecodeMsg(dc *msgp.Reader) error {
	sz, err := dc.ReadArrayHeader()
	if err != nil {
		return err
	}
	*l = make(labelsMsg, 0, sz)
	for sz > 0 {
		sz--
		label, err := dc.ReadString()
		if err != nil {
			return err
		}
		*l = append(*l, label)
	}
	return nil
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (l labelsMsg) Msgsize() int {
	sz := msgp.ArrayHeaderSize
	for _, label := range l {
		sz += msgp.StringPrefixSize + len(label)
	}
	return sz
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
