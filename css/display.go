package css

import (
	"bytes"
)

// DisplayMode is the layout view of the display property: the outer
// display (how a box takes part in its parent's formatting context) and
// the inner display (the formatting context it establishes for its own
// content), combined into one flag set.
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = 0      // unset or error condition
	NoneMode        DisplayMode = 0x0001 // outer display = none
	BlockMode       DisplayMode = 0x0002 // block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // inline context
	FlowRootMode    DisplayMode = 0x0010 // flow-root display property
	ListItemMode    DisplayMode = 0x0020 // list-item display
	FlexMode        DisplayMode = 0x0040 // inner display = flex
	GridMode        DisplayMode = 0x0080 // inner display = grid
	TableMode       DisplayMode = 0x0100 // table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	NoneMode, BlockMode, InlineMode, FlowRootMode, ListItemMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoneMode:        "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	FlowRootMode:    "flow-root",
	ListItemMode:    "list-item",
	FlexMode:        "flex",
	GridMode:        "grid",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// DisplayModeOf expands a display keyword into outer and inner mode
// flags. Table-internal display values all map to table mode.
func DisplayModeOf(d Display) DisplayMode {
	switch d {
	case DisplayNone:
		return NoneMode
	case DisplayBlock:
		return BlockMode | InnerBlockMode
	case DisplayInline, DisplayRunIn, DisplayMarker:
		return InlineMode | InnerInlineMode
	case DisplayInlineBlock:
		return InlineMode | InnerBlockMode
	case DisplayFlex:
		return BlockMode | FlexMode
	case DisplayInlineFlex:
		return InlineMode | FlexMode
	case DisplayGrid:
		return BlockMode | GridMode
	case DisplayInlineGrid:
		return InlineMode | GridMode
	case DisplayTable:
		return BlockMode | TableMode
	case DisplayInlineTable:
		return InlineMode | TableMode
	case DisplayTableRowGroup, DisplayTableHeaderGroup, DisplayTableFooterGroup,
		DisplayTableRow, DisplayTableColumnGroup, DisplayTableColumn,
		DisplayTableCell, DisplayTableCaption:
		return BlockMode | TableMode
	case DisplayFlowRoot:
		return BlockMode | FlowRootMode
	case DisplayListItem:
		return ListItemMode | BlockMode
	}
	return NoMode
}

// Outer returns the outer mode flags.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns the inner mode flags.
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel returns true if disp has an outer display level of
// BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one
// atomic mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// String returns the name of the first atomic mode set in disp.
func (disp DisplayMode) String() string {
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			return displayModeNames[m]
		}
	}
	return "no-mode"
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp == NoMode {
		return "-"
	}
	return "?"
}
