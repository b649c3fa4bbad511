package lcs_test

import (
	"math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/lcs"
	"github.com/katalvlaran/algotrace/trace"
)

// isSubsequence reports whether sub can be obtained from s by deletions.
func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	k := 0
	for _, r := range sub {
		for k < len(rs) && rs[k] != r {
			k++
		}
		if k == len(rs) {
			return false
		}
		k++
	}

	return true
}

func TestTrace_AlgorithmRhythm(t *testing.T) {
	tr, err := lcs.Trace("ALGORITHM", "RHYTHM")
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	res := tr.Last().Snapshot.Result
	assert.Len(t, []rune(res), 4)
	assert.True(t, isSubsequence(res, "ALGORITHM"))
	assert.True(t, isSubsequence(res, "RHYTHM"))
	assert.Equal(t, 4, tr.Last().Snapshot.Table[9][6])
	assert.Equal(t, "RTHM", res)
}

func TestTrace_SmallSteps(t *testing.T) {
	tr, err := lcs.Trace("AB", "B")
	require.NoError(t, err)

	assert.Equal(t, []string{
		`LCS of "AB" and "B": 3×2 table, row 0 and column 0 are 0`,
		"'A' ≠ 'B': dp[1][1] = max(dp[0][1]=0, dp[1][0]=0) = 0",
		"'B' = 'B': dp[2][1] = dp[1][0]+1 = 1",
		`(2,1) 'B' matches: keep it and move ↖, subsequence so far "B"`,
		`longest common subsequence "B" of length 1`,
	}, tr.Descriptions())

	assert.Equal(t, []lcs.Move{{Cell: trace.Cell{Row: 2, Col: 1}, Dir: lcs.Diagonal}}, tr.Last().Snapshot.Trail)
}

func TestTrace_ArrowsAccumulate(t *testing.T) {
	tr, err := lcs.Trace("ABCBDAB", "BDCABA")
	require.NoError(t, err)

	prev := 0
	for _, s := range tr.Steps() {
		assert.GreaterOrEqual(t, len(s.Snapshot.Trail), prev, "the trail never shrinks")
		prev = len(s.Snapshot.Trail)
	}
	assert.Len(t, []rune(tr.Last().Snapshot.Result), 4)
	assert.Equal(t, "↖", lcs.Diagonal.String())
}

func TestTrace_NoCommonRune(t *testing.T) {
	tr, err := lcs.Trace("abc", "xyz")
	require.NoError(t, err)
	assert.Empty(t, tr.Last().Snapshot.Result)
	assert.Equal(t, `longest common subsequence "" of length 0`, tr.Last().Description)
}

func TestTrace_EmptyInput(t *testing.T) {
	for _, in := range [][2]string{{"", "A"}, {"A", ""}} {
		tr, err := lcs.Trace(in[0], in[1])
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, lcs.ErrEmptyString)
		assert.True(t, trace.IsInvalidInput(err))
	}
}

func TestTrace_Deterministic(t *testing.T) {
	a, err := lcs.Trace("ALGORITHM", "RHYTHM")
	require.NoError(t, err)
	b, err := lcs.Trace("ALGORITHM", "RHYTHM")
	require.NoError(t, err)
	assert.Equal(t, a.Steps(), b.Steps())
}

// TestTrace_AgreesWithMyersDiff checks the LCS length against the equal
// runs of a minimal diff: with no timeout, diffmatchpatch never takes the
// half-match shortcut, so its equalities form a longest common subsequence.
func TestTrace_AgreesWithMyersDiff(t *testing.T) {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	rng := rand.New(rand.NewPCG(1, 2))
	const alphabet = "ACGT"
	word := func() string {
		b := make([]byte, 1+rng.IntN(8))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return string(b)
	}
	for i := 0; i < 200; i++ {
		a, b := word(), word()
		tr, err := lcs.Trace(a, b)
		require.NoError(t, err)

		equal := 0
		for _, d := range dmp.DiffMain(a, b, false) {
			if d.Type == diffmatchpatch.DiffEqual {
				equal += utf8.RuneCountInString(d.Text)
			}
		}
		res := tr.Last().Snapshot.Result
		require.Equal(t, equal, utf8.RuneCountInString(res), "LCS(%q, %q) = %q", a, b, res)
		require.True(t, isSubsequence(res, a) && isSubsequence(res, b))
	}
}
