package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	tests := map[string]struct {
		version string
		want    bool
	}{
		"dev build":     {version: "dev", want: true},
		"release build": {version: "1.2.0", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			original := Version
			defer func() { Version = original }()

			Version = tt.version
			assert.Equal(t, tt.want, IsDevBuild())
		})
	}
}
