package extraction

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"mybuddy/mybuddy/sources/database/models"
)

type cueCategory int

const (
	cueAction cueCategory = iota
	cueCall
	cueFollowUp
)

// cue is one row of the pattern table. group is the capture holding the
// interesting text: the action clause or the candidate name.
type cue struct {
	re       *regexp.Regexp
	category cueCategory
	group    int
}

// word matches a single Unicode word token.
const word = `([\p{L}\p{N}_]+)`

// Evaluated in order; action cues capture up to a full stop or end of line.
var cueTable = []cue{
	{regexp.MustCompile(`(?im)\b(need\s+to\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(should\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(have\s+to\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(must\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\btodo\b[:\s]+(.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(follow\s*up\b\s*(?:with\s+)?.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(touch\s+base\b\s*.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(keep\s+in\s+touch\b.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\bremind(?:er)?\b[:\s]+(.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(schedule\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(send\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(review\b\s+.+?)(?:\.|$)`), cueAction, 1},
	{regexp.MustCompile(`(?im)\b(call\b\s+.+?)(?:\.|$)`), cueAction, 1},

	{regexp.MustCompile(`(?i)\bcall\b\s+` + word), cueCall, 1},
	{regexp.MustCompile(`(?i)\bphone\b\s+` + word), cueCall, 1},
	{regexp.MustCompile(`(?i)\bring\b\s+` + word), cueCall, 1},

	{regexp.MustCompile(`(?i)\bfollow\s*up\b\s*(?:with\s+)?` + word), cueFollowUp, 1},
	{regexp.MustCompile(`(?i)\btouch\s+base\b\s*(?:with\s+)?` + word), cueFollowUp, 1},
	{regexp.MustCompile(`(?i)\bkeep\s+in\s+touch\b.*?(?:with\s+)?` + word), cueFollowUp, 1},
	{regexp.MustCompile(`(?i)\bcheck\s+(?:in|back)\b\s*(?:with\s+)?` + word), cueFollowUp, 1},
}

var titleNameRe = regexp.MustCompile(`\b(?i:with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)

// Tokens that follow a cue word but are never names.
var stopWords = map[string]struct{}{
	"me": {}, "him": {}, "her": {}, "them": {}, "us": {}, "it": {}, "this": {}, "that": {},
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "about": {}, "back": {}, "up": {}, "out": {},
	"my": {}, "your": {}, "his": {}, "their": {}, "our": {}, "via": {}, "email": {}, "phone": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {},
	"sunday": {}, "tomorrow": {}, "today": {}, "next": {}, "week": {}, "month": {}, "year": {},
	"asap": {},
}

// RuleExtractor is the deterministic, offline strategy.
type RuleExtractor struct{}

func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

func (RuleExtractor) Name() string { return "rules" }

func (RuleExtractor) Extract(_ context.Context, title, content string) (*Result, error) {
	return ExtractRules(title, content), nil
}

// ExtractRules runs the cue table over title and content.
func ExtractRules(title, content string) *Result {
	text := title + "\n" + content
	res := &Result{
		ActionItems: []ActionItem{},
		Contacts:    []Contact{},
		Reminders:   []Reminder{},
	}

	var actions actionSet
	names := newNameSet()
	if name := nameFromTitle(title); name != "" {
		names.add(name)
	}

	for _, c := range cueTable {
		for _, m := range c.re.FindAllStringSubmatch(text, -1) {
			captured := strings.TrimSpace(m[c.group])
			if c.category == cueAction {
				actions.add(captured)
				continue
			}
			if !isCandidateName(captured) {
				continue
			}
			names.add(captured)
			typ := models.ReminderCall
			if c.category == cueFollowUp {
				typ = models.ReminderFollowUp
			}
			res.Reminders = append(res.Reminders, Reminder{
				ContactName: captured,
				Type:        typ,
				Message:     strings.TrimSpace(m[0]),
			})
		}
	}

	for _, desc := range actions.items {
		res.ActionItems = append(res.ActionItems, ActionItem{Description: desc})
	}
	for _, name := range names.order {
		res.Contacts = append(res.Contacts, Contact{Name: name})
	}

	// Last resort: a note about someone with no recognisable cue keeps its lines.
	if len(names.order) > 0 && len(res.ActionItems) == 0 {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if utf8.RuneCountInString(line) > 5 {
				res.ActionItems = append(res.ActionItems, ActionItem{Description: line})
			}
		}
	}
	return res
}

func nameFromTitle(title string) string {
	m := titleNameRe.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return m[1]
}

func isCandidateName(s string) bool {
	if s == "" {
		return false
	}
	if _, stop := stopWords[strings.ToLower(s)]; stop {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// actionSet keeps the most specific phrasing when cues overlap: a new
// description contained in an accepted one is skipped, accepted ones
// contained in a new description are replaced by it.
type actionSet struct {
	items []string
	lower []string
}

func (s *actionSet) add(desc string) {
	desc = strings.TrimSpace(strings.TrimRight(desc, ".,;!"))
	if utf8.RuneCountInString(desc) <= 3 {
		return
	}
	l := strings.ToLower(desc)
	for _, existing := range s.lower {
		if strings.Contains(existing, l) {
			return
		}
	}
	items, lower := s.items[:0], s.lower[:0]
	for i, existing := range s.lower {
		if strings.Contains(l, existing) {
			continue
		}
		items = append(items, s.items[i])
		lower = append(lower, existing)
	}
	s.items = append(items, desc)
	s.lower = append(lower, l)
}

type nameSet struct {
	seen  map[string]struct{}
	order []string
}

func newNameSet() *nameSet {
	return &nameSet{seen: map[string]struct{}{}}
}

func (s *nameSet) add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}
