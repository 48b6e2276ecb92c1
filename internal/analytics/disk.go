package analytics

import "os"

// DatabaseSizeBytes returns the on-disk size of the SQLite database at dbPath,
// including its WAL and shared-memory sidecar files. Missing files contribute 0.
func DatabaseSizeBytes(dbPath string) int64 {
	if dbPath == "" {
		return 0
	}
	var total int64
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			total += info.Size()
		}
	}
	return total
}
