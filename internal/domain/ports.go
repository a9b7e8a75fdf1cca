package domain

// ScanReader decodes raw scan artifacts.
type ScanReader interface {
	Read(path string) (*ScanData, error)
	// Parse decodes data; name picks the format by extension.
	Parse(name string, data []byte) (*ScanData, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// BaselineStore persists the scan used as the default previous snapshot.
type BaselineStore interface {
	Load(projectPath string) (*ScanData, error)
	Save(projectPath string, scan *ScanData) error
	Clear(projectPath string) error
}

// DriftHistory records drift runs.
type DriftHistory interface {
	Save(projectPath string, entry DriftEntry, limit int) error
	Load(projectPath string) ([]DriftEntry, error)
}

// GitInfo reads repository state.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	// FileAtRevision returns the content of file as of rev.
	FileAtRevision(repoPath, rev, file string) ([]byte, error)
}
