package pxdgen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden end-to-end runs: each testdata directory holds a header (plus any
// headers it includes) and the expected emitted text.
func TestGenerate_Golden(t *testing.T) {
	cases := []struct {
		dir    string
		lib    string
		std    string
		header string
	}{
		{dir: "cuda", lib: "cu", std: "c++11", header: "cuda.h"},
		{dir: "libx", lib: "libx", std: "c11", header: "libx.h"},
		{dir: "sdk", lib: "sdk", std: "c99", header: "sdk.h"},
	}

	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", tc.dir, "expected.pxd"))
			require.NoError(t, err)

			var buf bytes.Buffer
			gen := New(
				WithStandard(tc.std),
				WithOutput(&buf),
			)
			err = gen.Generate(context.Background(), tc.lib, filepath.Join("testdata", tc.dir, tc.header))
			require.NoError(t, err)

			assert.Equal(t, string(want), buf.String())
		})
	}
}
