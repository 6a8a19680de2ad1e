// Package manifest records what a pipeline run produced: the assets on
// disk with their checksums, and the status of each workflow step.
package manifest

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Asset describes one file produced by the run.
type Asset struct {
	Path    string    `json:"path"`
	Kind    string    `json:"kind"`
	Size    int64     `json:"size"`
	MD5     string    `json:"md5"`
	Created time.Time `json:"created"`
}

// Step records whether a workflow stage ran and how it went.
type Step struct {
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Detail   string    `json:"detail,omitempty"`
	Finished time.Time `json:"finished"`
}

// Step statuses.
const (
	StatusDone    = "done"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Manifest is the persisted record of one run.
type Manifest struct {
	RunID   string    `json:"run_id"`
	Project string    `json:"project"`
	Started time.Time `json:"started"`
	Steps   []Step    `json:"steps"`
	Assets  []Asset   `json:"assets"`
}

// New starts a manifest for a fresh run.
func New(project string) *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Project: project,
		Started: time.Now(),
	}
}

// AddStep appends a workflow step record.
func (m *Manifest) AddStep(name, status, detail string) {
	m.Steps = append(m.Steps, Step{
		Name:     name,
		Status:   status,
		Detail:   detail,
		Finished: time.Now(),
	})
}

// AddAsset checksums the file at path and records it. Missing files are
// an error so the manifest never lists assets that do not exist.
func (m *Manifest) AddAsset(path, kind string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	sum, err := fileMD5(path)
	if err != nil {
		return err
	}

	m.Assets = append(m.Assets, Asset{
		Path:    path,
		Kind:    kind,
		Size:    info.Size(),
		MD5:     sum,
		Created: info.ModTime(),
	})
	return nil
}

// Save writes the manifest as JSON.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &m, nil
}

func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
