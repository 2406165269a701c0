package team

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the team configuration file looked up next to the executable
const DefaultFileName = "team.json"

// FileLoader reads the team credentials from a file on every call
type FileLoader struct {
	path string
}

var _ interfaces.ConfigLoader = (*FileLoader)(nil)

// NewFileLoader creates a loader for path. An empty path resolves to
// DefaultFileName in the executable's directory.
func NewFileLoader(path string) (*FileLoader, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileLoader{path: path}, nil
}

// DefaultPath returns DefaultFileName colocated with the running executable
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve executable path")
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}

// Path returns the file path this loader reads
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads and validates the team configuration. A missing file yields an
// empty config and no error. A present file must decode and carry both team
// and token, otherwise the error is tagged model.ErrTagInvalidConfig.
func (l *FileLoader) Load(ctx context.Context) (*model.InviteConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			ctxlog.From(ctx).Debug("Team config not found", "path", l.path)
			return &model.InviteConfig{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read team config",
			goerr.V("path", l.path),
			goerr.T(model.ErrTagInvalidConfig))
	}

	cfg, err := Parse(l.path, data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid team config",
			goerr.V("path", l.path),
			goerr.T(model.ErrTagInvalidConfig))
	}

	return cfg, nil
}

// Parse decodes team configuration data. The format is chosen by the file
// extension of name: YAML for .yaml/.yml, JSON otherwise.
func Parse(name string, data []byte) (*model.InviteConfig, error) {
	var cfg model.InviteConfig

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML team config",
				goerr.T(model.ErrTagInvalidConfig))
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON team config",
				goerr.T(model.ErrTagInvalidConfig))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
