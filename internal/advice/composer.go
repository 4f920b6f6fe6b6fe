package advice

import (
	"fmt"
	"strings"

	"github.com/maumlab/maumlog/internal/journal"
)

// Fixed user-facing strings. The engine's contract is to always return
// a displayable string, so every failure mode maps onto one of these.
const (
	// MsgDataUnavailable is returned when the advice dataset could not
	// be loaded or no summary was provided.
	MsgDataUnavailable = "조언 데이터를 불러오지 못했어요. 잠시 후 다시 시도해 주세요."

	// MsgNoActivity is returned when the summary has no logged activity.
	MsgNoActivity = "이 기간에는 기록된 활동이 없어요. 오늘의 마음을 하나라도 남겨 보세요!"

	// MsgGenerationFailed is returned when composition fails
	// unexpectedly.
	MsgGenerationFailed = "조언을 만드는 중 문제가 생겼어요. 다시 시도해 주세요."

	// fallbackStrength is used when no strength record matches.
	fallbackStrength = "꾸준히 기록하고 있다는 것 자체가 큰 강점이에요."
)

// Section headings of the composed message.
const (
	headingStrength = "**잘하고 있는 점**"
	headingGrowth   = "**돌아볼 점**"
	headingTips     = "**실천 팁**"
)

// placeholderPeriodLabel is substituted into intro texts only.
const placeholderPeriodLabel = "{periodLabel}"

// composition assembles one advice message from the loaded records and
// the current summary. Sections are built in fixed order; each section
// either contributes text or falls back deterministically.
type composition struct {
	engine  *Engine
	records []Record
	sum     *journal.Summary
	label   string
}

// findAndPick filters the records by type (and subtype when non-empty)
// and by criteria match against the summary, then returns one matching
// record chosen uniformly at random, or nil when none match.
func (c *composition) findAndPick(typ, subtype string) *Record {
	var pool []Record
	for _, r := range c.records {
		if r.Type != typ {
			continue
		}
		if subtype != "" && r.Subtype != subtype {
			continue
		}
		if !Evaluate(r.Criteria, c.sum) {
			continue
		}
		pool = append(pool, r)
	}
	if len(pool) == 0 {
		return nil
	}
	picked := pool[c.engine.pickIndex(len(pool))]
	return &picked
}

// build runs the section pipeline and returns the composed message with
// all placeholders substituted.
func (c *composition) build() string {
	var sections []string

	if intro := c.buildIntro(); intro != "" {
		sections = append(sections, intro)
	}
	sections = append(sections, c.buildStrength())
	growthSubtype := ""
	if growth, subtype := c.buildGrowth(); growth != "" {
		sections = append(sections, growth)
		growthSubtype = subtype
	}
	if tips := c.buildTips(growthSubtype); tips != "" {
		sections = append(sections, tips)
	}
	if closing := c.findAndPick(TypeClosing, ""); closing != nil {
		sections = append(sections, closing.Text)
	}

	return substitutePlaceholders(strings.Join(sections, "\n\n"), c.sum)
}

// buildIntro picks an intro for the period type inferred from the
// label, falling back to the default intro. The {periodLabel}
// placeholder is substituted here, before concatenation.
func (c *composition) buildIntro() string {
	period := journal.PeriodFromLabel(c.label)
	intro := c.findAndPick(TypeIntro, string(period))
	if intro == nil {
		intro = c.findAndPick(TypeIntro, SubtypeDefault)
	}
	if intro == nil {
		return ""
	}
	return strings.ReplaceAll(intro.Text, placeholderPeriodLabel, c.label)
}

// buildStrength always contributes exactly one numbered item, using the
// fixed encouragement line when no record matches.
func (c *composition) buildStrength() string {
	text := fallbackStrength
	if r := c.findAndPick(TypeStrength, ""); r != nil {
		text = r.Text
	} else if r := c.findAndPick(TypeStrength, SubtypeBalance); r != nil {
		text = r.Text
	}
	return headingStrength + "\n1. " + text
}

// buildGrowth contributes the optional growth section. The picked
// record's subtype is returned so the tips section can link its
// remediation tip.
func (c *composition) buildGrowth() (string, string) {
	r := c.findAndPick(TypeGrowth, "")
	if r == nil {
		return "", ""
	}
	return headingGrowth + "\n" + r.Text, r.Subtype
}

// buildTips builds the ordered tip list: the growth remediation tip
// first, then the maintain-strengths tip. Only when both miss, one
// random tip of any other subtype is used, with criteria not reapplied.
func (c *composition) buildTips(growthSubtype string) string {
	var tips []string

	if growthSubtype != "" {
		if r := c.findAndPick(TypeTip, growthSubtype); r != nil {
			tips = append(tips, r.Text)
		}
	}
	if r := c.findAndPick(TypeTip, SubtypeMaintainStrengths); r != nil {
		tips = append(tips, r.Text)
	}
	if len(tips) == 0 {
		var pool []Record
		for _, r := range c.records {
			if r.Type == TypeTip && r.Subtype != SubtypeMaintainStrengths {
				pool = append(pool, r)
			}
		}
		if len(pool) > 0 {
			tips = append(tips, pool[c.engine.pickIndex(len(pool))].Text)
		}
	}
	if len(tips) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingTips)
	for i, tip := range tips {
		fmt.Fprintf(&b, "\n%d. %s", i+1, tip)
	}
	return b.String()
}

// substitutePlaceholders replaces every {fieldName} token with the
// corresponding summary value.
func substitutePlaceholders(text string, sum *journal.Summary) string {
	for _, name := range journal.FieldNames() {
		v, _ := sum.Field(name)
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprintf("%d", v))
	}
	return text
}
