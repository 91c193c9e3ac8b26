package services

import "context"

// BackupSvcFacade exposes the on-demand table snapshot export.
type BackupSvcFacade interface {
	// ExportAll snapshots every record table to a timestamped tabular file
	// under the configured backup directory, returning table name -> path.
	ExportAll(ctx context.Context) (map[string]string, error)
}
