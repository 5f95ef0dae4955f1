package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notaneet/ttmerge/model"
	"github.com/notaneet/ttmerge/utils"
)

// Matcher selects course identifiers. Entries match exactly, or as a regular
// expression when prefixed with "~". An empty matcher matches everything.
type Matcher struct {
	MatchRaw utils.StringEnum
	Regexp   []*regexp.Regexp
}

// NewMatcher compiles the "~" entries of raw.
func NewMatcher(raw []string) (*Matcher, error) {
	m := &Matcher{MatchRaw: append(utils.StringEnum(nil), raw...)}
	if err := m.Init(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init compiles the regular expressions in MatchRaw.
func (m *Matcher) Init() error {
	m.Regexp = nil
	for _, s := range m.MatchRaw {
		if !strings.HasPrefix(s, "~") {
			continue
		}
		re, err := regexp.Compile(s[1:])
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", s, err)
		}
		m.Regexp = append(m.Regexp, re)
	}
	return nil
}

// Empty reports whether the matcher accepts everything.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.MatchRaw) == 0
}

func (m *Matcher) Match(text string) bool {
	if m.Empty() {
		return true
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		}
	}
	for _, re := range m.Regexp {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}

// MatchClass matches the class by course identifier.
func (m *Matcher) MatchClass(c model.Class) bool {
	return m.Match(c.CourseID)
}
