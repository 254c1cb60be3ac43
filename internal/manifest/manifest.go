// Package manifest reads the bootloader version manifest (version.json).
package manifest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Unknown is substituted for any version that cannot be determined.
const Unknown = "unknown"

// LoaderVersionKey is the only manifest key that is consumed.
const LoaderVersionKey = "LoaderVersion"

// ErrParse marks manifests that were read but are not a JSON object.
var ErrParse = errors.New("invalid JSON manifest")

// Manifest is the subset of version.json the generator uses.
type Manifest struct {
	Path          string
	LoaderVersion string
}

// Load reads path and extracts LoaderVersion.
//
// A missing or null LoaderVersion yields Unknown. Other keys are ignored.
// Read failures are returned as-is (wrapping *fs.PathError). Content that
// is not a JSON object, including a bare null, is reported as ErrParse.
func Load(path string) (*Manifest, error) {
	b, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	raw, err := json.Parser().Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w: %w", path, ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w: root must be a JSON object", path, ErrParse)
	}

	k := koanf.New(".")
	if err := k.Load(decoded(raw), nil); err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}

	return &Manifest{
		Path:          path,
		LoaderVersion: loaderVersion(k),
	}, nil
}

// decoded serves an already parsed manifest to koanf.
type decoded map[string]interface{}

func (d decoded) ReadBytes() ([]byte, error) {
	return nil, errors.New("decoded manifest provider does not support ReadBytes")
}

func (d decoded) Read() (map[string]interface{}, error) {
	return d, nil
}

func loaderVersion(k *koanf.Koanf) string {
	switch v := k.Get(LoaderVersionKey).(type) {
	case nil:
		return Unknown
	case string:
		return v
	case float64:
		// Plain decimal notation; 1e10 renders as 10000000000.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
