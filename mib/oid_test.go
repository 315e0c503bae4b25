package mib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "1.3.6.1", "1.3.6.1", false},
		{"single arc", "1", "1", false},
		{"leading dot", ".1.3.6.1", "1.3.6.1", false},
		{"zero arc", "0", "0", false},
		{"large arc", "4294967295", "4294967295", false},
		{"empty string", "", "", true},
		{"leading dot only", ".", "", true},
		{"overflow", "4294967296", "", true},
		{"overflow mid", "1.3.4294967296.1", "", true},
		{"invalid char", "1.3.x.1", "", true},
		{"empty arc", "1..3", "", true},
		{"trailing dot", "1.3.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidOID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOidParentDoesNotMutate(t *testing.T) {
	original := Oid{1, 3, 6}
	parent := original.Parent()
	parent[0] = 99
	assert.Equal(t, uint32(1), original[0])
	assert.Nil(t, Oid{1}.Parent())
}

func TestOidChildAndAppend(t *testing.T) {
	oid := Oid{1, 3, 6}
	assert.Equal(t, "1.3.6.1", oid.Child(1).String())
	assert.Equal(t, "1.3.6.1.2", oid.Append(Oid{1, 2}).String())
	assert.Equal(t, "1.3.6", oid.String(), "original mutated")

	var nilOid Oid
	assert.Equal(t, "1", nilOid.Child(1).String())
}

func TestOidHasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		oid    Oid
		prefix Oid
		want   bool
	}{
		{"exact match", Oid{1, 3, 6}, Oid{1, 3, 6}, true},
		{"prefix match", Oid{1, 3, 6, 1}, Oid{1, 3}, true},
		{"no match", Oid{1, 3, 6}, Oid{1, 4}, false},
		{"prefix longer", Oid{1, 3}, Oid{1, 3, 6}, false},
		{"nil prefix", Oid{1, 3}, nil, true},
		{"nil oid", nil, Oid{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.oid.HasPrefix(tt.prefix))
		})
	}
}

func TestOidCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Oid
		want int
	}{
		{"equal", Oid{1, 3, 6}, Oid{1, 3, 6}, 0},
		{"less by value", Oid{1, 3, 5}, Oid{1, 3, 6}, -1},
		{"greater by value", Oid{1, 3, 7}, Oid{1, 3, 6}, 1},
		{"less by length", Oid{1, 3}, Oid{1, 3, 6}, -1},
		{"greater by length", Oid{1, 3, 6}, Oid{1, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestOidLastArc(t *testing.T) {
	assert.Equal(t, uint32(6), Oid{1, 3, 6}.LastArc())
	assert.Equal(t, uint32(0), Oid(nil).LastArc())
}
