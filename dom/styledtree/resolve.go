package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/tree"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// defaultFontSize is the font size at the top of the tree, 16 CSS
// pixels, the anchor of rem units and of em units at the root.
const defaultFontSize = 16 * css.PX

// styleNode runs the cascade for one node: stylesheet matching,
// user-agent defaults and inline styling. The outcome is the node's
// base declaration list and its state-conditional list. Text nodes
// have no declarations of their own.
func (t *Tree) styleNode(id tree.NodeID) {
	sn := t.styNode(id)
	h := sn.htmlNode
	sn.styles, sn.stateful = nil, nil
	if h.Type == html.ElementNode {
		sn.styles, sn.stateful = t.om.MatchingDeclarations(h)
		// user-agent defaults fill in wherever the cascade is silent;
		// the property mask skips whatever a stylesheet already claimed
		var claimed style.PropertySet
		for _, d := range sn.styles {
			claimed.Add(d.Prop)
		}
		for _, uap := range style.UserAgentStyles(h.DataAtom) {
			if claimed.Has(uap.Prop) {
				continue
			}
			sn.styles.Insert(cssom.Declaration{
				Prop:   uap.Prop,
				Value:  uap.Value,
				Origin: cssom.UserAgent,
			})
		}
		if s := attr(h, "style"); s != "" {
			sn.addInline(style.StateNormal, douceuradapter.ParseInlineStyles(s))
		}
	}
	for _, d := range sn.inline {
		if d.State == style.StateNormal {
			sn.styles.Insert(d.Declaration)
		} else {
			sn.stateful.Insert(d.State, d.Declaration)
		}
	}
}

// resolveNode computes the node's resolved record from its cascaded
// declarations and the parent's resolved record, then re-encodes the
// node's compact cache line. Parents resolve before their children;
// this is the hard sequencing constraint of inheritance.
func (t *Tree) resolveNode(id tree.NodeID) {
	sn := t.styNode(id)
	rsv := resolver{t: t, sn: sn, parent: Node(t.Node(id).Parent())}
	sn.resolved = rsv.resolve()
	t.cache.EncodeNode(id, sn.resolved.Get)
}

// attr returns the value of an HTML attribute, or "".
func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// ---------------------------------------------------------------------------

// resolver computes one node's resolved record. The font size resolves
// first; every em value in the record is anchored to it.
type resolver struct {
	t        *Tree
	sn       *StyNode
	parent   *StyNode // nil at the root
	fontSize dimen.DU // the node's font size, valid after resolveFontSize
	rootSize dimen.DU // font size at the tree's root, the rem anchor
}

// resolve computes the resolved record: the node's font size first,
// then its cascaded declarations and overrides, then whatever the
// parent record hands down. The global keywords inherit and initial
// are substituted by concrete values here, so that record entries are
// always materialized.
func (r *resolver) resolve() ResolvedRecord {
	rec := make(ResolvedRecord, 0, len(r.sn.styles)+8)
	r.rootSize = r.t.rootFontSize()
	r.resolveFontSize(&rec)
	for _, d := range r.sn.styles {
		if d.Prop == style.PropFontSize {
			continue
		}
		v, inherited := r.materialize(d.Prop, d.Value)
		rec.set(d.Prop, v, inherited)
	}
	for _, d := range r.sn.overrides {
		if d.Prop == style.PropFontSize {
			continue
		}
		v, inherited := r.materialize(d.Prop, d.Value)
		rec.set(d.Prop, v, inherited)
	}
	if r.parent != nil {
		for _, e := range r.parent.resolved {
			if !e.Prop.IsInheritable() {
				continue
			}
			if _, ok := rec.Get(e.Prop); ok {
				continue
			}
			rec.set(e.Prop, e.Value, true)
		}
	}
	return rec
}

// resolveFontSize computes the node's font size ahead of all other
// properties. The dispatch over the ways a size can be given is
// closed: absolute, em or percent of the parent size, rem of the root
// size, or a global keyword. Viewport-relative sizes stay unresolved.
func (r *resolver) resolveFontSize(rec *ResolvedRecord) {
	parentSize := r.parentFontSize()
	r.fontSize = parentSize
	v, ok := r.sn.overrides.Get(style.PropFontSize)
	if !ok {
		v, ok = r.sn.styles.Get(style.PropFontSize)
	}
	if !ok {
		// nothing declared: the size inherits alongside the other
		// inheritable parent entries
		if r.parent != nil {
			if e, found := r.parent.resolved.Entry(style.PropFontSize); found {
				rec.set(style.PropFontSize, e.Value, true)
			}
		}
		return
	}
	inherited := false
	switch {
	case v == css.ValueInherit:
		v = css.DimenValue(css.JustDimen(parentSize))
		inherited = true
	case v == css.ValueInitial:
		v = css.DimenValue(css.JustDimen(defaultFontSize))
	case v.Kind() == css.KindDimension:
		d := v.AsDimen()
		switch {
		case d.IsAbsolute():
			// as declared
		case d.IsEm():
			v = css.DimenValue(css.JustDimen(scale(parentSize, d.UnitMilli())))
		case d.IsRem():
			v = css.DimenValue(css.JustDimen(scale(r.rootSize, d.UnitMilli())))
		case d.IsPercent():
			v = css.DimenValue(css.JustDimen(pct(parentSize, d.UnitMilli())))
		default:
			tracer().Debugf("font size %s stays unresolved", d)
		}
	}
	rec.set(style.PropFontSize, v, inherited)
	if v.Kind() == css.KindDimension {
		if d := v.AsDimen(); d.IsAbsolute() {
			r.fontSize = d.Unwrap()
		}
	}
}

// materialize computes the resolved value of one declared property.
// The global keywords inherit and initial are substituted, and
// relative units with a concrete anchor collapse to absolute device
// units. Values without a concrete anchor stay as declared.
func (r *resolver) materialize(p style.PropertyID, v css.Value) (css.Value, bool) {
	switch v {
	case css.ValueInherit:
		return r.parentValue(p), true
	case css.ValueInitial:
		return p.InitialValue(), false
	}
	if v.Kind() != css.KindDimension {
		return v, false
	}
	d := v.AsDimen()
	switch {
	case d.IsEm():
		return css.DimenValue(css.JustDimen(scale(r.fontSize, d.UnitMilli()))), false
	case d.IsRem():
		return css.DimenValue(css.JustDimen(scale(r.rootSize, d.UnitMilli()))), false
	case d.IsPercent():
		if anchor, ok := r.percentAnchor(p); ok {
			return css.DimenValue(css.JustDimen(pct(anchor, d.UnitMilli()))), false
		}
	}
	return v, false
}

// percentAnchor returns the absolute length a percentage of property p
// resolves against, if the tree knows one: the parent's resolved width
// for horizontal box properties, the parent's resolved height for
// vertical ones, the node's own font size for line-height. ok is false
// when the anchor is not a concrete length (yet), in which case the
// percentage stays symbolic.
func (r *resolver) percentAnchor(p style.PropertyID) (dimen.DU, bool) {
	switch p {
	case style.PropWidth, style.PropMinWidth, style.PropMaxWidth,
		style.PropLeft, style.PropRight, style.PropTextIndent,
		style.PropPaddingTop, style.PropPaddingRight,
		style.PropPaddingBottom, style.PropPaddingLeft,
		style.PropMarginTop, style.PropMarginRight,
		style.PropMarginBottom, style.PropMarginLeft:
		// margins and paddings, even the vertical ones, take the
		// containing block's width
		return r.parentAbsolute(style.PropWidth)
	case style.PropHeight, style.PropMinHeight, style.PropMaxHeight,
		style.PropTop, style.PropBottom:
		return r.parentAbsolute(style.PropHeight)
	case style.PropLineHeight:
		return r.fontSize, true
	}
	return 0, false
}

// parentAbsolute returns the parent's resolved value for p if it is an
// absolute length.
func (r *resolver) parentAbsolute(p style.PropertyID) (dimen.DU, bool) {
	if r.parent == nil {
		return 0, false
	}
	if v, ok := r.parent.resolved.Get(p); ok && v.Kind() == css.KindDimension {
		if d := v.AsDimen(); d.IsAbsolute() {
			return d.Unwrap(), true
		}
	}
	return 0, false
}

// parentValue is the total parent lookup behind an explicit inherit:
// the parent's resolved value, its user-agent default, or the static
// initial. At the root, inherit falls back to the initial value.
func (r *resolver) parentValue(p style.PropertyID) css.Value {
	if r.parent == nil {
		return p.InitialValue()
	}
	if v, ok := r.parent.resolved.Get(p); ok {
		return v
	}
	if v := style.GetUserAgentDefaultProperty(r.parent.htmlNode, p); !v.IsEmpty() {
		return v
	}
	return p.InitialValue()
}

// parentFontSize returns the parent's resolved font size, or the
// default size at the root.
func (r *resolver) parentFontSize() dimen.DU {
	if r.parent != nil {
		if v, ok := r.parent.resolved.Get(style.PropFontSize); ok && v.Kind() == css.KindDimension {
			if d := v.AsDimen(); d.IsAbsolute() {
				return d.Unwrap()
			}
		}
	}
	return defaultFontSize
}

// rootFontSize returns the resolved font size at the tree's root. An
// undeclared or unresolved root size is the 16px default.
func (t *Tree) rootFontSize() dimen.DU {
	if t.arena.NodeCount() == 0 {
		return defaultFontSize
	}
	if v, ok := t.styNode(0).resolved.Get(style.PropFontSize); ok && v.Kind() == css.KindDimension {
		if d := v.AsDimen(); d.IsAbsolute() {
			return d.Unwrap()
		}
	}
	return defaultFontSize
}

// scale applies a thousandths factor to a device-unit length.
func scale(base dimen.DU, milli int32) dimen.DU {
	return dimen.DU(int64(base) * int64(milli) / 1000)
}

// pct applies a percentage, given in thousandths of a percent point,
// to a device-unit length.
func pct(base dimen.DU, milli int32) dimen.DU {
	return dimen.DU(int64(base) * int64(milli) / 100000)
}
