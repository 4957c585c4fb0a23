package pdgfilter

import (
	"encoding/json"
	"fmt"

	"go-hep.org/x/hep/groot/rtree"
)

// Compression selects the codec of the output tree baskets.
type Compression struct {
	Name string
	Code CompressionCode
}

type CompressionCode int

const (
	COMPRESS_NONE CompressionCode = iota
	COMPRESS_ZLIB
	COMPRESS_LZ4
	COMPRESS_LZMA
)

var compressionStrings = []string{
	"none",
	"zlib",
	"lz4",
	"lzma",
}

func (c Compression) String() string {
	if c.Code < COMPRESS_NONE || c.Code > COMPRESS_LZMA {
		return "UNKNOWN"
	}
	return compressionStrings[c.Code]
}

func (c Compression) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Compression) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCompression(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ParseCompression(s string) (Compression, error) {
	for i, v := range compressionStrings {
		if v == s {
			return Compression{Name: s, Code: CompressionCode(i)}, nil
		}
	}
	return Compression{}, fmt.Errorf("invalid Compression: %s", s)
}

// writeOption translates the codec into the tree writer option.
func (c Compression) writeOption(level int) rtree.WriteOption {
	switch c.Code {
	case COMPRESS_ZLIB:
		return rtree.WithZlib(level)
	case COMPRESS_LZ4:
		return rtree.WithLZ4(level)
	case COMPRESS_LZMA:
		return rtree.WithLZMA(level)
	default:
		return rtree.WithoutCompression()
	}
}
