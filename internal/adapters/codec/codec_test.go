package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scorebook/internal/adapters/codec"
	"go.trai.ch/scorebook/internal/core/domain"
)

func sampleTable() *domain.RunTable {
	return &domain.RunTable{
		Orientation: domain.Vertical,
		Width:       2,
		Height:      5,
		Sequences: [][]domain.Run{
			{{Start: 1, Length: 3}},
			{{Start: 0, Length: 1}, {Start: 4, Length: 1}},
		},
	}
}

func TestFramed_RoundTrip(t *testing.T) {
	c := codec.NewFramed[domain.RunTable]()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, sampleTable()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(codec.Magic)))

	got, err := c.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)
}

func TestFramed_DecodeErrors(t *testing.T) {
	encoded := func(t *testing.T) []byte {
		t.Helper()
		var buf bytes.Buffer
		require.NoError(t, codec.NewFramed[domain.RunTable]().Encode(&buf, sampleTable()))
		return buf.Bytes()
	}

	tests := []struct {
		name        string
		input       func(t *testing.T) []byte
		errContains string
	}{
		{
			name:        "empty input",
			input:       func(*testing.T) []byte { return nil },
			errContains: domain.ErrPayloadMalformed.Error(),
		},
		{
			name: "wrong magic",
			input: func(t *testing.T) []byte {
				raw := encoded(t)
				copy(raw, "XXXX")
				return raw
			},
			errContains: domain.ErrPayloadMalformed.Error(),
		},
		{
			name: "flipped body byte",
			input: func(t *testing.T) []byte {
				raw := encoded(t)
				raw[len(raw)-2] ^= 0xFF
				return raw
			},
			errContains: domain.ErrChecksumMismatch.Error(),
		},
		{
			name: "truncated body",
			input: func(t *testing.T) []byte {
				raw := encoded(t)
				return raw[:len(raw)-5]
			},
			errContains: domain.ErrChecksumMismatch.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.NewFramed[domain.RunTable]().Decode(bytes.NewReader(tt.input(t)))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestYAML_Decode(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		src := `
orientation: HORIZONTAL
width: 4
height: 2
sequences:
  - [{start: 0, length: 2}]
  - []
`
		got, err := codec.NewYAML[domain.RunTable]().Decode(strings.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, 2, got.Weight())
	})

	t.Run("validation failure", func(t *testing.T) {
		src := `
orientation: HORIZONTAL
width: 4
height: 2
sequences:
  - [{start: 3, length: 2}]
  - []
`
		_, err := codec.NewYAML[domain.RunTable]().Decode(strings.NewReader(src))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidRunTable.Error())
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := codec.NewYAML[domain.RunTable]().Decode(strings.NewReader("width: [1"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPayloadUnmarshalFailed.Error())
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := codec.NewYAML[domain.RunTable]().Decode(strings.NewReader("  \n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPayloadMalformed.Error())
	})
}

func TestYAML_Encode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.NewYAML[domain.RunTable]().Encode(&buf, sampleTable()))
	assert.Contains(t, buf.String(), "orientation: VERTICAL")

	got, err := codec.NewYAML[domain.RunTable]().Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)
}
