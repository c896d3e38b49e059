package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [][]float64
		wantErr bool
	}{
		{
			name:  "simple",
			input: "1,2\n3,4\n5,6\n",
			want:  [][]float64{{1, 2}, {3, 4}, {5, 6}},
		},
		{
			name:  "spaces and exponents",
			input: " 1.5 , -2e3\n0.25,4\n",
			want:  [][]float64{{1.5, -2000}, {0.25, 4}},
		},
		{
			name:  "no trailing newline and blank lines",
			input: "1\n\n2",
			want:  [][]float64{{1}, {2}},
		},
		{
			name:  "ragged rows are kept",
			input: "1,2,3\n4,5\n",
			want:  [][]float64{{1, 2, 3}, {4, 5}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "non numeric field",
			input:   "1,2\n3,abc\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadParseErrorLocation(t *testing.T) {
	_, err := Read(strings.NewReader("1,2\n3,4\n5,x\n"))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, 1, parseErr.Column)
	assert.Equal(t, "x", parseErr.Field)
	assert.Contains(t, err.Error(), "line 3, column 1")
}

func TestReadParseErrorLineWithQuotedNewline(t *testing.T) {
	// the first record spans lines 1-2, so the bad field is on line 3
	_, err := Read(strings.NewReader("1,\"2\n\"\n3,x\n"))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, 1, parseErr.Column)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]float64{{1, 2.5}, {-0.125, 1e21}, {3, 4}}
	require.NoError(t, Write(&buf, rows))
	assert.Equal(t, "1,2.5\n-0.125,1e+21\n3,4\n", buf.String())
}

func TestWriteReadRoundTrip(t *testing.T) {
	rows := [][]float64{{0.1, 1.0 / 3}, {-7.000000000000001, 123456789.123}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o600))

	rows, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	c := Clone(rows)
	c[0][0] = 100
	assert.Equal(t, 1.0, rows[0][0])
	assert.Equal(t, [][]float64{{100, 2}, {3, 4}}, c)
}
