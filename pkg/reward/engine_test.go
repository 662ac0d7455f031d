package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateConfirmedDamage(t *testing.T) {
	e := NewEngine("CONFIRMED_DAMAGE", 10)

	out := e.Evaluate("CONFIRMED_DAMAGE: Broken tiles near the library entrance. Priority: High.")

	assert.True(t, out.Confirmed)
	assert.Equal(t, 10, out.Credits)
	assert.Contains(t, out.Reply, "You earned 10 credits")
	assert.NotContains(t, out.Reply, "CONFIRMED_DAMAGE", "raw marker must not leak into the user-visible reply")
}

func TestEvaluateMarkerMidReply(t *testing.T) {
	e := NewEngine("CONFIRMED_DAMAGE", 10)

	out := e.Evaluate("Assessment complete. CONFIRMED_DAMAGE: water leak. Priority: Medium.")

	assert.True(t, out.Confirmed)
}

func TestEvaluateNoDamage(t *testing.T) {
	e := NewEngine("CONFIRMED_DAMAGE", 10)

	raw := "The image shows a well-maintained corridor. No infrastructure damage visible."
	out := e.Evaluate(raw)

	assert.False(t, out.Confirmed)
	assert.Zero(t, out.Credits)
	assert.Equal(t, raw, out.Reply, "unconfirmed replies pass through verbatim")
}

func TestEvaluateRewardConstantNamedInReply(t *testing.T) {
	e := NewEngine("CONFIRMED_DAMAGE", 25)

	out := e.Evaluate("CONFIRMED_DAMAGE: loose wiring.")

	assert.Equal(t, 25, out.Credits)
	assert.Contains(t, out.Reply, "25 credits")
}
