package emit

import "github.com/fatih/color"

// ColorAttr names the colorable parts of emitter output.
type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	ValueColor
	TextColor
	CommentColor
	PIColor
)

// Colors maps output parts to color functions for terminal rendering.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:     color.CyanString,
			AttrColor:    color.GreenString,
			ValueColor:   color.YellowString,
			CommentColor: color.BlueString,
			PIColor:      color.MagentaString,
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}
