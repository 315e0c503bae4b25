package mib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNode(t *testing.T) {
	m := buildTestMib(t)

	tests := []struct {
		query string
		want  string
	}{
		{"TEST-MIB::testName", "testName"},
		{"testName", "testName"},
		{"1.3.6.1.4.1.9999.2.1.3", "testStatus"},
		{".1.3.6.1", "internet"},
		{"TEST-SMI::testName", ""},
		{"NO-SUCH-MIB::testName", ""},
		{"1.3.6.1.4.1.9999.2.1.3.7", ""},
		{"nosuch", ""},
		{"1.x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			nd := m.FindNode(tt.query)
			if tt.want == "" {
				assert.Nil(t, nd)
				return
			}
			require.NotNil(t, nd)
			assert.Equal(t, tt.want, nd.Name())
		})
	}
}

func TestLongestPrefixByOID(t *testing.T) {
	m := buildTestMib(t)

	nd := m.LongestPrefixByOID(Oid{1, 3, 6, 1, 4, 1, 9999, 2, 1, 3, 42})
	require.NotNil(t, nd)
	assert.Equal(t, "testStatus", nd.Name())

	// unnamed intermediate nodes still match; callers skip to a named ancestor
	nd = m.LongestPrefixByOID(Oid{1, 3, 6, 1, 4, 1, 5})
	require.NotNil(t, nd)
	assert.Equal(t, Oid{1, 3, 6, 1, 4, 1}, nd.OID())
	assert.Empty(t, nd.Name())

	assert.Nil(t, m.LongestPrefixByOID(Oid{2, 5}))
	assert.Nil(t, m.LongestPrefixByOID(nil))
}

func TestNodeTraversal(t *testing.T) {
	m := buildTestMib(t)

	table := m.Node("testTable")
	require.NotNil(t, table)
	var names []string
	for nd := range table.Subtree() {
		names = append(names, nd.Name())
	}
	assert.Equal(t, []string{"testTable", "testEntry", "testIndex", "testLabel", "testStatus"}, names)

	entry := m.Object("testEntry")
	cols := entry.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, entry, cols[2].Row())
	assert.Equal(t, m.Object("testTable"), cols[2].Table())
	assert.Equal(t, m.Object("testTable"), entry.Table())

	assert.True(t, m.Root().IsRoot())
	assert.Equal(t, "(root)", m.Root().String())
	assert.Equal(t, "testName (1.3.6.1.4.1.9999.1)", m.Node("testName").String())
	assert.Greater(t, m.NodeCount(), 10)
}

func TestMibCollections(t *testing.T) {
	m := buildTestMib(t)

	assert.Len(t, m.Tables(), 2)
	assert.Len(t, m.Rows(), 2)
	assert.Len(t, m.Columns(), 4)
	assert.Len(t, m.Scalars(), 1)
	assert.Len(t, m.Notifications(), 1)
	assert.NotNil(t, m.Type("DisplayString"))
	assert.Nil(t, m.Type("NoSuchType"))
}

func TestTypeChain(t *testing.T) {
	m := buildTestMib(t)

	display := m.Type("DisplayString")
	require.NotNil(t, display)
	assert.Equal(t, BaseUnknown, display.Base())
	assert.Equal(t, BaseOctetString, display.EffectiveBase())
	assert.True(t, display.IsTextualConvention())
	assert.Equal(t, "DisplayString (OCTET STRING)", display.String())
	assert.Equal(t, "OCTET STRING", display.Parent().Name())
}

func TestRanges(t *testing.T) {
	assert.True(t, InRanges(nil, 42))
	assert.True(t, InRanges([]Range{{1, 10}, {20, 30}}, 25))
	assert.False(t, InRanges([]Range{{1, 10}, {20, 30}}, 15))
	assert.Equal(t, "1..10", Range{1, 10}.String())
	assert.Equal(t, "4", Range{4, 4}.String())

	n, ok := FixedSize([]Range{{6, 6}})
	assert.True(t, ok)
	assert.Equal(t, 6, n)
	_, ok = FixedSize([]Range{{0, 255}})
	assert.False(t, ok)
	_, ok = FixedSize(nil)
	assert.False(t, ok)
}
