package claim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

var (
	testImageID = core.Sha256.HashBytes([]byte("guest image"))
	testJournal = NewJournal([]byte("hello, journal"))
)

func TestOkPrunedJournalSameDigest(t *testing.T) {
	full := Ok(testImageID, Value(testJournal))
	pruned := Ok(testImageID, Pruned[Journal](testJournal.Digest()))
	byDigest := OkDigest(testImageID, testJournal.Digest())

	assert.Equal(t, full.Digest(), pruned.Digest())
	assert.Equal(t, full.Digest(), byDigest.Digest())
}

func TestOkDistinguishesInputs(t *testing.T) {
	base := OkDigest(testImageID, testJournal.Digest())

	otherImage := OkDigest(core.Sha256.HashBytes([]byte("other image")), testJournal.Digest())
	assert.NotEqual(t, base.Digest(), otherImage.Digest())

	otherJournal := OkDigest(testImageID, NewJournal([]byte("hello, journal!")).Digest())
	assert.NotEqual(t, base.Digest(), otherJournal.Digest())
}

func TestOkShape(t *testing.T) {
	c := Ok(testImageID, Value(testJournal))

	assert.Equal(t, testImageID, c.ImageID())
	assert.Equal(t, ExitHalted(0), c.ExitCode)
	assert.Equal(t, core.ZeroDigest, c.Input)

	post, err := c.Post.Value()
	require.NoError(t, err)
	assert.Equal(t, SystemState{}, post)

	assumptions, err := c.Assumptions()
	require.NoError(t, err)
	assert.Empty(t, assumptions)
}

func TestExitCodeChangesDigest(t *testing.T) {
	c := OkDigest(testImageID, testJournal.Digest())
	d := c
	d.ExitCode = ExitHalted(1)
	assert.NotEqual(t, c.Digest(), d.Digest())

	d.ExitCode = ExitCode{System: Paused}
	assert.NotEqual(t, c.Digest(), d.Digest())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		code    ExitCode
		words   []uint32
		expects bool
		str     string
	}{
		{ExitHalted(0), []uint32{0, 0}, false, "Halted(0)"},
		{ExitHalted(3), []uint32{0, 3 << 24}, false, "Halted(3)"},
		{ExitCode{System: Paused, User: 1}, []uint32{1 << 24, 1 << 24}, true, "Paused(1)"},
		{ExitSplit, []uint32{2 << 24, 0}, true, "SystemSplit"},
		{ExitCode{System: SessionLimit}, []uint32{3 << 24, 0}, false, "SessionLimit"},
		{ExitHalted(255), []uint32{0, 255 << 24}, false, "Halted(255)"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.words, tt.code.Words())
			assert.Equal(t, tt.expects, tt.code.Expects())
			assert.Equal(t, tt.str, tt.code.String())
		})
	}
}

func TestExitCodeJSONRange(t *testing.T) {
	var e ExitCode
	require.NoError(t, json.Unmarshal([]byte(`{"system":0,"user":255}`), &e))
	assert.Equal(t, ExitHalted(255), e)

	assert.Error(t, json.Unmarshal([]byte(`{"system":0,"user":256}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"system":256,"user":0}`), &e))
}

func TestNilOutputDigest(t *testing.T) {
	var out *Output
	assert.Equal(t, core.ZeroDigest, out.Digest())

	var m MaybePruned[*Output]
	assert.Equal(t, core.ZeroDigest, m.Digest())
}

func TestAssumptionsDigest(t *testing.T) {
	var empty Assumptions
	assert.Equal(t, core.ZeroDigest, empty.Digest())

	a := Assumption{Claim: testImageID, ControlRoot: testJournal.Digest()}
	b := Assumption{Claim: testJournal.Digest(), ControlRoot: testImageID}

	var ab, ba Assumptions
	ab.Add(a)
	ab.Add(b)
	ba.Add(b)
	ba.Add(a)
	assert.NotEqual(t, ab.Digest(), ba.Digest())

	mixed := Assumptions{Pruned[Assumption](a.Digest()), Value(b)}
	assert.Equal(t, ab.Digest(), mixed.Digest())
}

func TestClaimAssumptionsPruned(t *testing.T) {
	var list Assumptions
	list.Add(Assumption{Claim: testImageID})

	c := OkDigest(testImageID, testJournal.Digest())
	c.Output = Value(&Output{
		Journal:     Value(testJournal),
		Assumptions: Pruned[Assumptions](list.Digest()),
	})
	_, err := c.Assumptions()
	assert.ErrorIs(t, err, ErrPruned)

	c.Output = c.Output.Prune()
	_, err = c.Assumptions()
	assert.ErrorIs(t, err, ErrPruned)
}

func TestClaimJSONPreservesDigest(t *testing.T) {
	var list Assumptions
	list.Add(Assumption{Claim: testImageID, ControlRoot: testJournal.Digest()})

	c := ReceiptClaim{
		Pre:      Value(SystemState{PC: 0x1000, MerkleRoot: testImageID}),
		Post:     Value(SystemState{PC: 0x2000, MerkleRoot: testJournal.Digest()}),
		ExitCode: ExitSplit,
		Output:   Value(&Output{Journal: Value(testJournal), Assumptions: Value(list)}),
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded ReceiptClaim
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.Digest(), decoded.Digest())

	output, err := decoded.Output.Value()
	require.NoError(t, err)
	journal, err := output.Journal.Value()
	require.NoError(t, err)
	assert.Equal(t, testJournal.Bytes, journal.Bytes)
}

func TestClaimJSONNilOutput(t *testing.T) {
	c := ReceiptClaim{Pre: Pruned[SystemState](testImageID), ExitCode: ExitCode{System: Paused}}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded ReceiptClaim
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.Digest(), decoded.Digest())
}
