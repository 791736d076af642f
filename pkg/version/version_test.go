package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	defer func() { Version, GitCommit = oldVersion, oldCommit }()

	Version, GitCommit = "1.2.3", "abcdef"

	v := GetVersion()
	assert.Contains(t, v, "Version: 1.2.3")
	assert.Contains(t, v, "GitCommit: abcdef")
	assert.Contains(t, v, runtime.Version())
}
