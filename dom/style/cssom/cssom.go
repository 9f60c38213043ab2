package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"golang.org/x/net/html"
)

// RuleSource yields the cascade inputs for one document node: the
// ranked base declarations and the state-conditional declarations of
// matching pseudo-class rules. The CSSOM is the canonical
// implementation; tests may substitute fixed declaration tables.
type RuleSource interface {
	MatchingDeclarations(n *html.Node) (DeclarationList, StatefulList)
}

// CSSOM collects the stylesheets applying to a document, flattened into
// one matchable rule list. Stylesheets enter with a cascade origin;
// matching a node yields ready-ranked declarations.
//
// A CSSOM is constructed once per document and is read-only afterwards,
// so matching may run concurrently.
type CSSOM struct {
	rules []matchableRule
	order uint32
}

var _ RuleSource = &CSSOM{}

// matchableRule is one selector of one rule, with the rule's
// declarations pre-parsed to typed values.
type matchableRule struct {
	selector    cascadia.Sel
	state       style.State
	origin      Origin
	specificity Specificity
	order       uint32
	props       []ruleProp
}

type ruleProp struct {
	prop      style.PropertyID
	value     css.Value
	important bool
}

// NewCSSOM creates an empty CSSOM.
func NewCSSOM() *CSSOM {
	return &CSSOM{}
}

// AddStylesheet appends the rules of a stylesheet at a cascade origin.
// Rules of later stylesheets outrank equal-specificity rules of earlier
// ones. Selectors cascadia cannot handle are skipped with a trace
// message, as are unknown properties and malformed values.
func (om *CSSOM) AddStylesheet(sheet StyleSheet, origin Origin) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	for _, rule := range sheet.Rules() {
		props := collectRuleProps(rule)
		if len(props) == 0 {
			continue
		}
		om.order++
		order := om.order
		for _, selector := range strings.Split(rule.Selector(), ",") {
			selector = strings.TrimSpace(selector)
			if selector == "" {
				continue
			}
			base, state := splitStateSuffix(selector)
			sel, err := cascadia.Parse(base)
			if err != nil {
				tracer().Infof("Skipping unsupported selector %q: %v", selector, err)
				continue
			}
			spec := sel.Specificity()
			classes := spec[1]
			if state != style.StateNormal {
				classes++ // the stripped state pseudo-class still counts
			}
			om.rules = append(om.rules, matchableRule{
				selector:    sel,
				state:       state,
				origin:      origin,
				specificity: FoldSpecificity(spec[0], classes, spec[2]),
				order:       order,
				props:       props,
			})
		}
	}
	return nil
}

// RuleCount returns the number of matchable single-selector rules.
func (om *CSSOM) RuleCount() int {
	return len(om.rules)
}

// MatchingDeclarations matches an HTML node against all rules. It
// returns the cascaded base declarations and, separately, the
// state-conditional declarations of matching pseudo-class rules.
func (om *CSSOM) MatchingDeclarations(n *html.Node) (DeclarationList, StatefulList) {
	var base DeclarationList
	var stateful StatefulList
	for _, r := range om.rules {
		if !r.selector.Match(n) {
			continue
		}
		for _, p := range r.props {
			d := Declaration{
				Prop:        p.prop,
				Value:       p.value,
				Origin:      r.origin,
				Specificity: r.specificity,
				Order:       r.order,
			}
			if p.important && d.Origin == Author {
				d.Origin = AuthorImportant
			}
			if r.state == style.StateNormal {
				base.Insert(d)
			} else {
				stateful.Insert(r.state, d)
			}
		}
	}
	return base, stateful
}

// splitStateSuffix strips a trailing interaction-state pseudo-class
// from a selector, e.g. "a:hover" into ("a", hover). Selectors without
// one pass through unchanged. A bare pseudo-class like ":hover" matches
// every element.
func splitStateSuffix(selector string) (string, style.State) {
	i := strings.LastIndexByte(selector, ':')
	if i < 0 {
		return selector, style.StateNormal
	}
	s, ok := style.ParseState(selector[i+1:])
	if !ok || s == style.StateNormal {
		return selector, style.StateNormal
	}
	base := strings.TrimSuffix(selector[:i], ":") // tolerate '::'
	if strings.TrimSpace(base) == "" {
		base = "*"
	}
	return base, s
}

// collectRuleProps pre-parses the declarations of a rule.
func collectRuleProps(rule Rule) []ruleProp {
	var props []ruleProp
	for _, key := range rule.Properties() {
		key = strings.ToLower(strings.TrimSpace(key))
		important := rule.IsImportant(key)
		for _, tp := range typedProps(key, rule.Value(key)) {
			props = append(props, ruleProp{tp.prop, tp.value, important})
		}
	}
	return props
}

type typedProp struct {
	prop  style.PropertyID
	value css.Value
}

// typedProps expands a raw key/value into typed property/value pairs,
// splitting shorthands. Unknown keys and malformed values are dropped
// with a trace message. A shorthand may split onto itself (background
// with a non-color payload); such results parse directly instead of
// splitting again.
func typedProps(key string, value style.Property) []typedProp {
	if style.IsShorthand(key) {
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Infof("Skipping shorthand %s: %v", key, err)
			return nil
		}
		props := make([]typedProp, 0, len(kvs))
		for _, kv := range kvs {
			if kv.Key == key {
				if tp, ok := typedProp1(kv.Key, kv.Value); ok {
					props = append(props, tp)
				}
				continue
			}
			props = append(props, typedProps(kv.Key, kv.Value)...)
		}
		return props
	}
	if tp, ok := typedProp1(key, value); ok {
		return []typedProp{tp}
	}
	return nil
}

func typedProp1(key string, value style.Property) (typedProp, bool) {
	id, ok := style.ParseProperty(key)
	if !ok {
		tracer().Infof("Skipping unknown property %s", key)
		return typedProp{}, false
	}
	v, err := style.ParseValue(id, value)
	if err != nil {
		tracer().Infof("Skipping property %s: %v", key, err)
		return typedProp{}, false
	}
	return typedProp{prop: id, value: v}, true
}

// RawDeclarations converts textual key/value pairs into typed
// declarations carrying the rank of tmpl. Shorthands are split; unknown
// properties and malformed values are skipped with a trace message.
//
// This is the ingestion path for style attributes and for programmatic
// overrides, neither of which run through selector matching.
func RawDeclarations(kvs []style.KeyValue, tmpl Declaration) []Declaration {
	var decls []Declaration
	for _, kv := range kvs {
		for _, tp := range typedProps(strings.ToLower(strings.TrimSpace(kv.Key)), kv.Value) {
			d := tmpl
			d.Prop = tp.prop
			d.Value = tp.value
			decls = append(decls, d)
		}
	}
	return decls
}
