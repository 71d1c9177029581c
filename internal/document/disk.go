package document

import (
	"os"
	"time"

	"github.com/tomeedit/tome/internal/logging"
)

// DiskStatus is the outcome of a staleness poll.
type DiskStatus int

const (
	DiskUnchanged DiskStatus = iota
	DiskChanged
	DiskMissing
)

func (s DiskStatus) String() string {
	switch s {
	case DiskChanged:
		return "changed"
	case DiskMissing:
		return "missing"
	default:
		return "unchanged"
	}
}

// CheckDiskStatus polls the on-disk file for changes behind the document's
// back. Polls are rate-limited by the configured interval unless forced.
// A vanished file marks the document dirty and reports DiskMissing; the
// caller must offer a re-save. A newer modification time reports
// DiskChanged once and adopts the new timestamp; whether to reload is the
// caller's decision. Timestamps in the future are logged and ignored.
func (m *Manager) CheckDiskStatus(doc *Document, force bool) DiskStatus {
	if !doc.Valid() || doc.realPath == "" {
		return DiskUnchanged
	}

	if !force {
		interval := time.Duration(m.cfg.File.DiskCheckTimeout) * time.Second
		if interval <= 0 {
			return DiskUnchanged
		}
		if m.now().Sub(doc.lastCheck) < interval {
			return DiskUnchanged
		}
	}
	doc.lastCheck = m.now()

	st, err := os.Stat(doc.realPath)
	if err != nil {
		doc.changed = true
		m.log.Warn("file on disk is missing",
			logging.FieldPath, doc.DisplayPath,
			logging.FieldRealPath, doc.realPath)
		return DiskMissing
	}

	diskTime := st.ModTime()
	if now := m.now(); diskTime.After(now) || doc.ModTime.After(now) {
		m.log.Warn("file modification time is in the future, ignoring",
			logging.FieldPath, doc.DisplayPath,
			logging.FieldMTime, diskTime)
		return DiskUnchanged
	}

	if diskTime.After(doc.ModTime) {
		doc.ModTime = diskTime
		m.log.Debug("file changed on disk",
			logging.FieldPath, doc.DisplayPath,
			logging.FieldMTime, diskTime)
		return DiskChanged
	}
	return DiskUnchanged
}
