// Package dar reads the main attributes of a DAML archive manifest.
package dar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noders-team/go-manifest/pkg/archive"
	"github.com/noders-team/go-manifest/pkg/manifest"
)

const (
	HeaderVersion    = "Manifest-Version"
	HeaderCreatedBy  = "Created-By"
	HeaderName       = "Name"
	HeaderSdkVersion = "Sdk-Version"
	HeaderMainDalf   = "Main-Dalf"
	HeaderDalfs      = "Dalfs"
	HeaderFormat     = "Format"
	HeaderEncryption = "Encryption"
)

var ErrMainDalfNotFound = errors.New("dar: main-dalf not found in manifest")

type Manifest struct {
	Version    string
	CreatedBy  string
	Name       string
	SdkVersion string
	MainDalf   string
	Dalfs      []string
	Format     string
	Encryption string
}

// FromManifest reads the DAR attributes of the main section of m.
func FromManifest(m manifest.Manifest) (*Manifest, error) {
	main := m.Main()
	get := func(name string) string {
		v, _ := main.Lookup(name)
		return strings.TrimSpace(v)
	}

	dm := &Manifest{
		Version:    get(HeaderVersion),
		CreatedBy:  get(HeaderCreatedBy),
		Name:       get(HeaderName),
		SdkVersion: get(HeaderSdkVersion),
		MainDalf:   get(HeaderMainDalf),
		Dalfs:      splitDalfs(get(HeaderDalfs)),
		Format:     get(HeaderFormat),
		Encryption: get(HeaderEncryption),
	}
	if dm.MainDalf == "" {
		return nil, ErrMainDalfNotFound
	}
	return dm, nil
}

func splitDalfs(s string) []string {
	if s == "" {
		return nil
	}
	var dalfs []string
	for _, dalf := range strings.Split(s, ",") {
		if dalf = strings.TrimSpace(dalf); dalf != "" {
			dalfs = append(dalfs, dalf)
		}
	}
	return dalfs
}

// ReadFile reads the manifest of the .dar file at path. Values are kept as
// raw strings.
func ReadFile(path string) (*Manifest, error) {
	m, err := archive.DecodeFile(path, manifest.WithDecodeFunc(manifest.RawDecode))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest from '%s': %w", path, err)
	}
	return FromManifest(m)
}

// Manifest converts dm back to a single section manifest. Empty fields are
// left out.
func (dm *Manifest) Manifest() manifest.Manifest {
	sect := manifest.NewSection()
	set := func(name, v string) {
		if v != "" {
			sect.Set(name, manifest.String(v))
		}
	}

	set(HeaderVersion, dm.Version)
	set(HeaderCreatedBy, dm.CreatedBy)
	set(HeaderName, dm.Name)
	set(HeaderSdkVersion, dm.SdkVersion)
	set(HeaderMainDalf, dm.MainDalf)
	set(HeaderDalfs, strings.Join(dm.Dalfs, ", "))
	set(HeaderFormat, dm.Format)
	set(HeaderEncryption, dm.Encryption)
	return manifest.Manifest{sect}
}

// PackageID returns the hash suffix of the main dalf file name, or "" if
// it has none.
func (dm *Manifest) PackageID() string {
	parts := strings.Split(dm.MainDalf, "/")
	filename := strings.TrimSuffix(parts[len(parts)-1], ".dalf")

	lastHyphen := strings.LastIndex(filename, "-")
	if lastHyphen != -1 && lastHyphen < len(filename)-1 {
		return filename[lastHyphen+1:]
	}
	return ""
}
