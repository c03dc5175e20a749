package jieba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViterbiJointRecoversTaggedWord(t *testing.T) {
	m := defaultHMMJoint()
	_, states := viterbiJoint(m, []rune("杭研"))
	require.Len(t, states, 2)
	assert.Equal(t, "B", states[0].BMES)
	assert.Equal(t, "nz", states[0].POS)
	assert.Equal(t, "E", states[1].BMES)
	assert.Equal(t, "nz", states[1].POS)
}

func TestPosRecoverOOV(t *testing.T) {
	m := defaultHMMJoint()
	got := posRecoverOOV(m)([]rune("杭研"))
	require.Len(t, got, 1)
	assert.Equal(t, Pair{"杭研", "nz"}, got[0])
}

func TestCandidateStatesFallsBackToAllStates(t *testing.T) {
	m := defaultHMMJoint()
	got := candidateStates(m, '海') // unseen character
	assert.ElementsMatch(t, m.allStates, got)
}
