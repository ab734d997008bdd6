package types

import (
	"sort"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Settings keys used by persisted configuration and the CLI.
const (
	SettingDeckCount          = "deck_count"
	SettingPenetrationPercent = "penetration_percent"
	SettingShuffleMode        = "shuffle_mode"
	SettingShuffleSeed        = "shuffle_seed"
	SettingStartingBankroll   = "starting_bankroll"
	SettingDealerHitsSoft17   = "dealer_hits_soft_17"
	SettingBlackjackPayout    = "blackjack_payout"
	SettingDoubleAfterSplit   = "double_after_split"
	SettingDoublePolicy       = "double_policy"
	SettingResplitAces        = "resplit_aces"
	SettingMaxSplits          = "max_splits"
	SettingEarlySurrender     = "early_surrender"
	SettingLateSurrender      = "late_surrender"
	SettingMinimumBet         = "minimum_bet"
	SettingMaximumBet         = "maximum_bet"
	SettingPlayMode           = "play_mode"
)

var settingsKeys = []string{
	SettingDeckCount,
	SettingPenetrationPercent,
	SettingShuffleMode,
	SettingShuffleSeed,
	SettingStartingBankroll,
	SettingDealerHitsSoft17,
	SettingBlackjackPayout,
	SettingDoubleAfterSplit,
	SettingDoublePolicy,
	SettingResplitAces,
	SettingMaxSplits,
	SettingEarlySurrender,
	SettingLateSurrender,
	SettingMinimumBet,
	SettingMaximumBet,
	SettingPlayMode,
}

// SettingsKeys lists every recognised key in display order.
func SettingsKeys() []string {
	return append([]string(nil), settingsKeys...)
}

// Settings renders r as a flat string mapping. RulesFromSettings inverts it.
func (r Rules) Settings() map[string]string {
	p := r.p
	return map[string]string{
		SettingDeckCount:          strconv.Itoa(p.DeckCount),
		SettingPenetrationPercent: strconv.Itoa(p.PenetrationPercent),
		SettingShuffleMode:        string(p.ShuffleMode),
		SettingShuffleSeed:        strconv.FormatUint(p.ShuffleSeed, 10),
		SettingStartingBankroll:   FormatAmount(p.StartingBankroll),
		SettingDealerHitsSoft17:   strconv.FormatBool(p.DealerHitsSoft17),
		SettingBlackjackPayout:    FormatAmount(p.BlackjackPayout),
		SettingDoubleAfterSplit:   strconv.FormatBool(p.DoubleAfterSplit),
		SettingDoublePolicy:       string(p.DoublePolicy),
		SettingResplitAces:        strconv.FormatBool(p.ResplitAces),
		SettingMaxSplits:          strconv.Itoa(p.MaxSplits),
		SettingEarlySurrender:     strconv.FormatBool(p.EarlySurrender),
		SettingLateSurrender:      strconv.FormatBool(p.LateSurrender),
		SettingMinimumBet:         FormatAmount(p.MinimumBet),
		SettingMaximumBet:         FormatAmount(p.MaximumBet),
		SettingPlayMode:           string(p.PlayMode),
	}
}

// RulesFromSettings builds validated rules from a flat mapping. Missing or
// blank keys keep their defaults; unknown keys and malformed values are
// errors, never silently dropped.
func RulesFromSettings(m map[string]string) (Rules, error) {
	known := make(map[string]bool, len(settingsKeys))
	for _, k := range settingsKeys {
		known[k] = true
	}
	var unknown []string
	for k := range m {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Rules{}, ErrInvalidSettings.Wrapf("unknown keys: %s", strings.Join(unknown, ", "))
	}

	p := DefaultParams()
	d := settingsDecoder{m: m}
	d.intField(SettingDeckCount, &p.DeckCount)
	d.intField(SettingPenetrationPercent, &p.PenetrationPercent)
	d.strField(SettingShuffleMode, (*string)(&p.ShuffleMode))
	d.uintField(SettingShuffleSeed, &p.ShuffleSeed)
	d.decField(SettingStartingBankroll, &p.StartingBankroll)
	d.boolField(SettingDealerHitsSoft17, &p.DealerHitsSoft17)
	d.decField(SettingBlackjackPayout, &p.BlackjackPayout)
	d.boolField(SettingDoubleAfterSplit, &p.DoubleAfterSplit)
	d.strField(SettingDoublePolicy, (*string)(&p.DoublePolicy))
	d.boolField(SettingResplitAces, &p.ResplitAces)
	d.intField(SettingMaxSplits, &p.MaxSplits)
	d.boolField(SettingEarlySurrender, &p.EarlySurrender)
	d.boolField(SettingLateSurrender, &p.LateSurrender)
	d.decField(SettingMinimumBet, &p.MinimumBet)
	d.decField(SettingMaximumBet, &p.MaximumBet)
	d.strField(SettingPlayMode, (*string)(&p.PlayMode))
	if d.err != nil {
		return Rules{}, d.err
	}
	return NewRules(p)
}

// settingsDecoder keeps the first parse failure.
type settingsDecoder struct {
	m   map[string]string
	err error
}

func (d *settingsDecoder) raw(key string) (string, bool) {
	if d.err != nil {
		return "", false
	}
	v, ok := d.m[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (d *settingsDecoder) intField(key string, dst *int) {
	v, ok := d.raw(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		d.err = ErrInvalidSettings.Wrapf("%s: %q is not an integer", key, v)
		return
	}
	*dst = n
}

func (d *settingsDecoder) uintField(key string, dst *uint64) {
	v, ok := d.raw(key)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		d.err = ErrInvalidSettings.Wrapf("%s: %q is not an unsigned integer", key, v)
		return
	}
	*dst = n
}

func (d *settingsDecoder) boolField(key string, dst *bool) {
	v, ok := d.raw(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		d.err = ErrInvalidSettings.Wrapf("%s: %q is not a boolean", key, v)
		return
	}
	*dst = b
}

func (d *settingsDecoder) decField(key string, dst *sdkmath.LegacyDec) {
	v, ok := d.raw(key)
	if !ok {
		return
	}
	x, err := sdkmath.LegacyNewDecFromStr(v)
	if err != nil {
		d.err = ErrInvalidSettings.Wrapf("%s: %q is not a decimal", key, v)
		return
	}
	*dst = x
}

func (d *settingsDecoder) strField(key string, dst *string) {
	v, ok := d.raw(key)
	if !ok {
		return
	}
	*dst = strings.ToLower(v)
}
