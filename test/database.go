package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path of a fresh sqlite database for one test. The
// database is removed together with the temporary directory of the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("allocations-%s.db", uuid.New()))
}
