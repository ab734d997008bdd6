package cmd

import (
	"fmt"
	"io"

	sdkmath "cosmossdk.io/math"

	"monoblackjack/x/blackjack/types"
)

// textRenderer prints the table-visible events of a round, one line each.
type textRenderer struct {
	w io.Writer
}

func (t textRenderer) Observe(e types.Event) {
	var line string
	switch e.Type {
	case types.EventTypeShoeReshuffled:
		line = "shoe reshuffled"
	case types.EventTypeCardDealt:
		switch {
		case e.FaceDown:
			line = "dealer: hole card"
		case e.Who == types.Dealer:
			line = fmt.Sprintf("dealer: %s", e.Card)
		default:
			line = fmt.Sprintf("hand %d: %s", e.HandIndex+1, e.Card)
		}
	case types.EventTypeBlackjackDetected:
		line = fmt.Sprintf("%s blackjack", e.Who)
	case types.EventTypeInsuranceOffered:
		line = fmt.Sprintf("insurance offered (stake %s)", types.FormatAmount(e.Amount))
	case types.EventTypeInsuranceResult:
		line = fmt.Sprintf("insurance %s", signed(e.Amount))
	case types.EventTypePlayerSplit:
		line = fmt.Sprintf("split hand %d into hand %d", e.HandIndex+1, e.SplitIndex+1)
	case types.EventTypePlayerDoubled:
		line = fmt.Sprintf("hand %d doubled to %s", e.HandIndex+1, types.FormatAmount(e.Amount))
	case types.EventTypePlayerBusted:
		line = fmt.Sprintf("hand %d busts with %d", e.HandIndex+1, e.Value)
	case types.EventTypePlayerSurrendered:
		line = fmt.Sprintf("hand %d surrendered", e.HandIndex+1)
	case types.EventTypeHoleCardRevealed:
		line = fmt.Sprintf("dealer reveals %s", e.Card)
	case types.EventTypeDealerBusted:
		line = fmt.Sprintf("dealer busts with %d", e.Value)
	case types.EventTypeDealerStood:
		line = fmt.Sprintf("dealer stands on %d", e.Value)
	case types.EventTypeHandResolved:
		line = fmt.Sprintf("hand %d: %s %s", e.HandIndex+1, e.Outcome, signed(e.Amount))
	case types.EventTypeRoundComplete:
		line = fmt.Sprintf("round %d net %s", e.Round, signed(e.Amount))
	default:
		return
	}
	fmt.Fprintln(t.w, line)
}

// signed prefixes non-negative amounts with "+".
func signed(x sdkmath.LegacyDec) string {
	s := types.FormatAmount(x)
	if !x.IsNil() && !x.IsNegative() {
		return "+" + s
	}
	return s
}
