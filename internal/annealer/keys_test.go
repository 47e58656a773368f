package annealer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    Pair
		wantErr bool
	}{
		{
			name: "bare pair",
			key:  "0,1",
			want: Pair{I: 0, J: 1},
		},
		{
			name: "parenthesized pair",
			key:  "(0,1)",
			want: Pair{I: 0, J: 1},
		},
		{
			name: "spaces around indices",
			key:  "( 2 , 3 )",
			want: Pair{I: 2, J: 3},
		},
		{
			name: "surrounding whitespace",
			key:  "  (4,5)  ",
			want: Pair{I: 4, J: 5},
		},
		{
			name: "diagonal entry",
			key:  "7,7",
			want: Pair{I: 7, J: 7},
		},
		{
			name: "negative indices",
			key:  "-1,2",
			want: Pair{I: -1, J: 2},
		},
		{
			name:    "missing comma",
			key:     "01",
			wantErr: true,
		},
		{
			name:    "non-numeric indices",
			key:     "a,b",
			wantErr: true,
		},
		{
			name:    "too many indices",
			key:     "(0,1,2)",
			wantErr: true,
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: true,
		},
		{
			name:    "missing second index",
			key:     "0,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePair(tt.key)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseIndex(t *testing.T) {
	index, err := parseIndex(" 12 ")
	require.NoError(t, err)
	require.Equal(t, 12, index)

	index, err = parseIndex("-3")
	require.NoError(t, err)
	require.Equal(t, -3, index)

	_, err = parseIndex("x")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
