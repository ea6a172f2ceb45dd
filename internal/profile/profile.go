// Package profile turns the active profile set into the one registration
// style that wires the customer service.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrConflictingProfiles is returned when more than one style token is active.
var ErrConflictingProfiles = errors.New("profile: more than one config style is active")

// ErrUnknownStrategy is returned by ParseStrategy for tokens that name no style.
var ErrUnknownStrategy = errors.New("profile: unknown config style")

// Strategy is one way of registering the data source and customer service.
type Strategy int

const (
	PropertiesFile Strategy = iota + 1
	JavaConfig
	XMLConfig
	ComponentScan
	Functional
)

// Strategies lists every style in the order they are checked.
var Strategies = []Strategy{PropertiesFile, JavaConfig, XMLConfig, ComponentScan, Functional}

var tokens = map[Strategy]string{
	PropertiesFile: "pf",
	JavaConfig:     "jc",
	XMLConfig:      "xml",
	ComponentScan:  "cs",
	Functional:     "fn",
}

var names = map[Strategy]string{
	PropertiesFile: "properties file",
	JavaConfig:     "java config",
	XMLConfig:      "xml config",
	ComponentScan:  "component scan",
	Functional:     "functional",
}

// Token returns the profile name that activates s.
func (s Strategy) Token() string { return tokens[s] }

func (s Strategy) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a profile token to its style.
func ParseStrategy(token string) (Strategy, error) {
	for s, t := range tokens {
		if t == token {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, token)
}

// Set is an immutable set of active profile names.
type Set struct {
	names []string
}

// NewSet builds a Set, trimming names and dropping blanks and duplicates.
func NewSet(names ...string) Set {
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return Set{names: out}
}

// Active reports whether name is in the set.
func (s Set) Active(name string) bool {
	_, found := slices.BinarySearch(s.names, name)
	return found
}

// Names returns the sorted profile names.
func (s Set) Names() []string { return slices.Clone(s.names) }

func (s Set) String() string { return "[" + strings.Join(s.names, ",") + "]" }

// Select picks the style named by the set. ok is false when no style token
// is active. Profiles that name no style are ignored; two or more style
// tokens are rejected with ErrConflictingProfiles.
func Select(s Set) (strategy Strategy, ok bool, err error) {
	var active []Strategy
	for _, st := range Strategies {
		if s.Active(st.Token()) {
			active = append(active, st)
		}
	}

	switch len(active) {
	case 0:
		return 0, false, nil
	case 1:
		return active[0], true, nil
	default:
		toks := make([]string, len(active))
		for i, st := range active {
			toks[i] = st.Token()
		}
		return 0, false, fmt.Errorf("%w: %s", ErrConflictingProfiles, strings.Join(toks, ", "))
	}
}
