package hist

import (
	"os"
	"path/filepath"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/hist/archive"
)

// FileConnector appends one timestamped line per record. The file is
// opened in append mode per record, so concurrent services writing
// different files need no coordination. Failures are logged and the
// record is lost; the ingress chain is never aborted.
type FileConnector[V any] struct {
	serviceType ServiceType
	path        string
	adapter     Adapter[V]
	archive     *archive.Store
}

// NewFileConnector creates the connector. archive may be nil.
func NewFileConnector[V any](serviceType ServiceType, dir string, adapter Adapter[V], arch *archive.Store) *FileConnector[V] {
	return &FileConnector[V]{
		serviceType: serviceType,
		path:        filepath.Join(dir, serviceType.FileName()),
		adapter:     adapter,
		archive:     arch,
	}
}

// Path returns the target file.
func (c *FileConnector[V]) Path() string {
	return c.path
}

// Publish appends "<timestamp>,<entity-text>" and mirrors the record
// into the archive when one is configured.
func (c *FileConnector[V]) Publish(v V) {
	line := Stamp(time.Now()) + "," + c.adapter.Render(v)

	if err := appendLine(c.path, line); err != nil {
		logs.Errorf("hist %s: append failed: %+v", c.serviceType, err)
		return
	}
	if c.archive != nil {
		if err := c.archive.Append(c.serviceType.String(), c.adapter.Key(v), line); err != nil {
			logs.Errorf("hist %s: archive failed: %+v", c.serviceType, err)
		}
	}
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
