package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc25/cascade"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		opts       []cascade.ParseOption
		wantErr    error
		wantW      int
		wantH      int
		wantFilled int
	}{
		{name: "plain", text: "@.\n.@", wantW: 2, wantH: 2, wantFilled: 2},
		{name: "trailing newline", text: "@@@\n...\n", wantW: 3, wantH: 2, wantFilled: 3},
		{name: "crlf", text: "@.\r\n.@\r\n", wantW: 2, wantH: 2, wantFilled: 2},
		{name: "trailing blank lines", text: "@\n\n\n", wantW: 1, wantH: 1, wantFilled: 1},
		{name: "custom alphabet", text: "#-\n-#", opts: []cascade.ParseOption{cascade.WithAlphabet('#', '-')}, wantW: 2, wantH: 2, wantFilled: 2},
		{name: "empty", text: "", wantErr: cascade.ErrEmptyGrid},
		{name: "only newlines", text: "\n\n", wantErr: cascade.ErrEmptyGrid},
		{name: "ragged", text: "@@\n@", wantErr: cascade.ErrNonRectangular},
		{name: "blank line inside", text: "@@\n\n@@", wantErr: cascade.ErrNonRectangular},
		{name: "unknown symbol", text: "@x", wantErr: cascade.ErrUnknownSymbol},
		{name: "default symbol under custom alphabet", text: "@-", opts: []cascade.ParseOption{cascade.WithAlphabet('#', '-')}, wantErr: cascade.ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := cascade.Parse(tt.text, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, cascade.ErrMalformedGrid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantW, g.Width())
			require.Equal(t, tt.wantH, g.Height())
			require.Equal(t, tt.wantFilled, g.Filled())
		})
	}
}

func TestParse_UnknownSymbolPosition(t *testing.T) {
	_, err := cascade.Parse("@@\n@?")
	require.ErrorContains(t, err, "line 2, column 2")
}

func TestParse_StringRoundTrip(t *testing.T) {
	const text = "..@@\n@.@.\n"
	g, err := cascade.Parse(text)
	require.NoError(t, err)
	require.Equal(t, text, g.String())
}

func TestWithAlphabet_PanicsOnEqualSymbols(t *testing.T) {
	require.Panics(t, func() { cascade.WithAlphabet('x', 'x') })
}
