// Package save owns the on-disk save directories: creation, deletion,
// property modification, and the JSON rendering of a save's state.
package save

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cubeworks/mc-manager/internal/api"
	"github.com/cubeworks/mc-manager/internal/naming"
	"github.com/cubeworks/mc-manager/internal/props"
	"github.com/cubeworks/mc-manager/internal/schema"
)

const eulaContent = "# file auto created by mc-manager\r\neula=true\r\n"

// Store manages the saves/ and versions/ directories under a base
// directory. Now is the clock used for datetime properties; tests replace
// it.
type Store struct {
	base string
	Now  func() string
}

func NewStore(base string) *Store {
	return &Store{base: base, Now: naming.Now}
}

// SaveDir returns the directory of one save.
func (s *Store) SaveDir(name string) string {
	return filepath.Join(s.base, "saves", name)
}

// PropsPath returns the path of a save's property file.
func (s *Store) PropsPath(name string) string {
	return filepath.Join(s.SaveDir(name), "server.properties")
}

// IconPath returns the path of a save's world icon, which may not exist.
func (s *Store) IconPath(name string) string {
	return filepath.Join(s.SaveDir(name), "world", "icon.png")
}

func (s *Store) versionJar(version string) string {
	return filepath.Join(s.base, "versions", version+".jar")
}

// Exists checks that the save directory is present. Absent or not a
// directory is NotFound, anything else IOError.
func (s *Store) Exists(name string) error {
	info, err := os.Stat(s.SaveDir(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return api.NotFound()
		}
		return api.IO(err)
	}
	if !info.IsDir() {
		return api.NotFound()
	}
	return nil
}

// Create builds a new save directory: eula, generated properties, and the
// server jar copied from the requested version. A failure after mkdir
// removes the directory again. Returns the same JSON Load would.
func (s *Store) Create(name, version string, values map[string]schema.Value) (string, error) {
	if !naming.IsSafe(name) {
		return "", api.BadName()
	}
	if _, err := os.Stat(s.SaveDir(name)); err == nil {
		return "", api.AlreadyExists()
	}
	info, err := os.Stat(s.versionJar(version))
	if err != nil || info.IsDir() {
		return "", api.VersionNotFound()
	}
	if err := schema.Validate(values); err != nil {
		return "", err
	}
	if err := os.Mkdir(s.SaveDir(name), 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", api.AlreadyExists()
		}
		return "", api.IO(err)
	}
	if err := s.populate(name, version, values); err != nil {
		os.RemoveAll(s.SaveDir(name))
		return "", api.IO(err)
	}
	return s.Load(name, "cold")
}

func (s *Store) populate(name, version string, values map[string]schema.Value) error {
	dir := s.SaveDir(name)
	if err := os.WriteFile(filepath.Join(dir, "eula.txt"), []byte(eulaContent), 0644); err != nil {
		return err
	}
	properties := s.generateProperties(version, values)
	if err := os.WriteFile(filepath.Join(dir, "server.properties"), []byte(properties), 0644); err != nil {
		return err
	}
	return copyFile(s.versionJar(version), filepath.Join(dir, "server.jar"))
}

// generateProperties emits every property with a client-visible access
// class: the version metadata key gets the requested version, writable
// keys take their override when one was supplied, everything else falls
// back to the schema default.
func (s *Store) generateProperties(version string, values map[string]schema.Value) string {
	now := s.Now()
	var out strings.Builder
	out.Grow(4 * 1024)
	for i := range schema.Properties {
		def := &schema.Properties[i]
		if def.Access == schema.AccessNone {
			continue
		}
		out.WriteString(def.Name)
		out.WriteString("=")
		switch {
		case def.Name == schema.VersionProperty:
			out.WriteString(props.Escape(version))
		default:
			if def.Access == schema.AccessWrite {
				if value, ok := values[def.Name]; ok {
					out.WriteString(props.Escape(value.PropString()))
					out.WriteString("\r\n")
					continue
				}
			}
			out.WriteString(props.Escape(schema.DefaultPropString(def, now)))
		}
		out.WriteString("\r\n")
	}
	return out.String()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Modify validates the overrides and merges them into the save's property
// file. The caller is responsible for gating on instance status.
func (s *Store) Modify(name string, values map[string]schema.Value) error {
	if err := s.Exists(name); err != nil {
		return err
	}
	if err := schema.Validate(values); err != nil {
		return err
	}
	raw := make(map[string]string, len(values))
	for k, v := range values {
		raw[k] = v.PropString()
	}
	if err := props.WriteMerge(s.PropsPath(name), raw); err != nil {
		return api.IO(err)
	}
	return nil
}

// Delete removes the save directory recursively.
func (s *Store) Delete(name string) error {
	if err := s.Exists(name); err != nil {
		return err
	}
	if err := os.RemoveAll(s.SaveDir(name)); err != nil {
		return api.IO(err)
	}
	return nil
}

// TouchAccess stamps the save's access-time metadata with the current
// time. Called when an instance starts and again when its child exits.
func (s *Store) TouchAccess(name string) error {
	values := map[string]string{schema.AccessTimeProperty: s.Now()}
	if err := props.WriteMerge(s.PropsPath(name), values); err != nil {
		return api.IO(err)
	}
	return nil
}

// Load renders the save as JSON: its name, the supervisor status supplied
// by the caller, and every client-visible property. Numeric and boolean
// values pass through verbatim (the stored text is already valid JSON);
// textual values are quoted. Missing properties render as null.
func (s *Store) Load(name, status string) (string, error) {
	if err := s.Exists(name); err != nil {
		return "", err
	}
	values, err := props.ReadAll(s.PropsPath(name))
	if err != nil {
		return "", api.IO(err)
	}
	var out strings.Builder
	out.Grow(4 * 1024)
	out.WriteString(`{"name":`)
	writeJSONString(&out, name)
	out.WriteString(`,"status":`)
	writeJSONString(&out, status)
	for i := range schema.Properties {
		def := &schema.Properties[i]
		if def.Access == schema.AccessNone {
			continue
		}
		out.WriteString(",")
		writeJSONString(&out, def.Name)
		out.WriteString(":")
		value, ok := values[def.Name]
		switch {
		case !ok:
			out.WriteString("null")
		case schema.IsStringy(def.Type):
			writeJSONString(&out, value)
		default:
			out.WriteString(value)
		}
	}
	out.WriteString("}")
	return out.String(), nil
}

func writeJSONString(out *strings.Builder, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		out.WriteString(`""`)
		return
	}
	out.Write(data)
}

// Iter lists the names of all saves. Entries whose names are not valid
// UTF-8 are skipped.
func (s *Store) Iter() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.base, "saves"))
	if err != nil {
		return nil, api.IO(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !utf8.ValidString(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// SchemaJSON dumps the property catalogue for clients.
func (s *Store) SchemaJSON() (string, error) {
	out, err := schema.JSON()
	if err != nil {
		return "", api.IO(err)
	}
	return out, nil
}
