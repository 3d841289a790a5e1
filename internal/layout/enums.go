package layout

import (
	"fmt"
	"strings"
)

// Text forms of the configuration enums, as used in scenario files and logs.
var (
	distributionNames   = []string{"left-to-right", "top-to-bottom"}
	alignmentNames      = []string{"start", "end", "center"}
	alignScopeNames     = []string{"container", "line"}
	autoSizePolicyNames = []string{"per-item", "per-batch"}
	layoutTypeNames     = []string{"flow", "grid", "stack"}
)

func enumString(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseEnum(names []string, s, kind string) (uint8, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid %s, try [%s]", s, kind, strings.Join(names, ", "))
}

func (d Distribution) String() string { return enumString(distributionNames, uint8(d), "Distribution") }

// ParseDistribution converts a name such as "left-to-right" to a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	v, err := parseEnum(distributionNames, s, "distribution")
	return Distribution(v), err
}

func (d Distribution) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Distribution) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDistribution(string(text))
	return err
}

func (a Alignment) String() string { return enumString(alignmentNames, uint8(a), "Alignment") }

// ParseAlignment converts a name such as "center" to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	v, err := parseEnum(alignmentNames, s, "alignment")
	return Alignment(v), err
}

func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Alignment) UnmarshalText(text []byte) (err error) {
	*a, err = ParseAlignment(string(text))
	return err
}

func (s AlignScope) String() string { return enumString(alignScopeNames, uint8(s), "AlignScope") }

// ParseAlignScope converts "container" or "line" to an AlignScope.
func ParseAlignScope(s string) (AlignScope, error) {
	v, err := parseEnum(alignScopeNames, s, "align scope")
	return AlignScope(v), err
}

func (s AlignScope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *AlignScope) UnmarshalText(text []byte) (err error) {
	*s, err = ParseAlignScope(string(text))
	return err
}

func (p AutoSizePolicy) String() string {
	return enumString(autoSizePolicyNames, uint8(p), "AutoSizePolicy")
}

// ParseAutoSizePolicy converts "per-item" or "per-batch" to an AutoSizePolicy.
func ParseAutoSizePolicy(s string) (AutoSizePolicy, error) {
	v, err := parseEnum(autoSizePolicyNames, s, "auto-size policy")
	return AutoSizePolicy(v), err
}

func (p AutoSizePolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *AutoSizePolicy) UnmarshalText(text []byte) (err error) {
	*p, err = ParseAutoSizePolicy(string(text))
	return err
}

func (t LayoutType) String() string { return enumString(layoutTypeNames, uint8(t), "LayoutType") }

// ParseLayoutType converts a name such as "flow" to a LayoutType.
func ParseLayoutType(s string) (LayoutType, error) {
	v, err := parseEnum(layoutTypeNames, s, "layout type")
	return LayoutType(v), err
}

func (t LayoutType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *LayoutType) UnmarshalText(text []byte) (err error) {
	*t, err = ParseLayoutType(string(text))
	return err
}
