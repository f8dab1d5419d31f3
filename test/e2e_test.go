package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/graeme-hill/compio-go"
	"github.com/stretchr/testify/require"
)

// TestAll drives the reader through a whole synthetic problem input: a count,
// a line of values, then a list of typed queries. This is the shape of input
// the reader exists to consume.
func TestAll(t *testing.T) {
	var sb strings.Builder

	const n = 1000

	sb.WriteString(fmt.Sprintf("%d\n", n))
	want := int64(0)
	for i := 0; i < n; i++ {
		v := int64(i*i) - 400
		want += v
		sb.WriteString(fmt.Sprintf("%d ", v))
	}
	sb.WriteString("\n")

	sb.WriteString("3\n")
	sb.WriteString("s 2.5\n")
	sb.WriteString("p 7 -9\n")
	sb.WriteString("q 18446744073709551615\n")

	r := compio.NewReader(strings.NewReader(sb.String()))

	count, err := r.NextInt()
	require.NoError(t, err)
	require.Equal(t, n, count)

	var sum int64
	for i := 0; i < count; i++ {
		v, err := r.NextInt64()
		require.NoError(t, err)
		sum += v
	}
	require.Equal(t, want, sum)

	queries, err := r.NextInt32()
	require.NoError(t, err)
	require.Equal(t, int32(3), queries)

	op, err := r.NextChar()
	require.NoError(t, err)
	require.Equal(t, byte('s'), op)

	f, err := r.NextFloat64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	op, err = r.NextChar()
	require.NoError(t, err)
	require.Equal(t, byte('p'), op)

	a, b, err := r.NextPair()
	require.NoError(t, err)
	require.Equal(t, int32(7), a)
	require.Equal(t, int32(-9), b)

	op, err = r.NextChar()
	require.NoError(t, err)
	require.Equal(t, byte('q'), op)

	u, err := r.NextUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), u)

	_, err = r.NextToken()
	require.ErrorIs(t, err, compio.ErrEndOfStream)
}
