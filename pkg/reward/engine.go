package reward

import (
	"fmt"
	"strings"
)

// Outcome is the decision for one vision-inference reply.
type Outcome struct {
	// Confirmed is true when the reply carries the damage marker and the
	// compound report/credit transition must run.
	Confirmed bool
	// Reply is the text appended to the session: the synthesized confirmation
	// for confirmed damage, otherwise the raw inference text.
	Reply string
	// Credits granted to the reporter (zero when not confirmed).
	Credits int
}

// Engine decides whether a vision reply confirms infrastructure damage.
type Engine struct {
	marker          string
	rewardPerReport int
}

func NewEngine(marker string, rewardPerReport int) *Engine {
	return &Engine{
		marker:          marker,
		rewardPerReport: rewardPerReport,
	}
}

// Evaluate inspects the raw vision reply. Marker presence is a plain
// substring match; the vision prompt instructs the model to emit it verbatim
// at the start of a confirming reply, but any position counts.
func (e *Engine) Evaluate(visionReply string) Outcome {
	if !strings.Contains(visionReply, e.marker) {
		return Outcome{
			Confirmed: false,
			Reply:     visionReply,
		}
	}

	return Outcome{
		Confirmed: true,
		Reply: fmt.Sprintf(
			"Analyzing report... \n\nInfrastructure damage confirmed. I have logged this for maintenance. You earned %d credits.",
			e.rewardPerReport,
		),
		Credits: e.rewardPerReport,
	}
}
