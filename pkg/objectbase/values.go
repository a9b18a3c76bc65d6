package objectbase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mandelsoft/formbuilder/pkg/utils"
)

func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseIntList parses a comma separated list of integers.
// Malformed entries are ignored.
func ParseIntList(v string) []int {
	var r []int
	for _, f := range utils.SplitTrim(v, ",") {
		i, err := strconv.Atoi(f)
		if err != nil {
			log.Debug("ignoring malformed list entry {{entry}}", "entry", f)
			continue
		}
		r = append(r, i)
	}
	return r
}

func FormatIntList(list []int) string {
	return utils.JoinFunc(list, ",", strconv.Itoa)
}

type IntPair struct {
	First  int
	Second int
}

func (p IntPair) String() string {
	return fmt.Sprintf("%d:%d", p.First, p.Second)
}

// ParseIntPairList parses a list of the form a:b,c:d. A missing
// second value defaults to 0.
func ParseIntPairList(v string) []IntPair {
	var r []IntPair
	for _, f := range utils.SplitTrim(v, ",") {
		a, b, _ := strings.Cut(f, ":")
		first, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			continue
		}
		second, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			second = 0
		}
		r = append(r, IntPair{first, second})
	}
	return r
}

func FormatIntPairList(list []IntPair) string {
	return utils.Join(list, ",")
}

// ParseStringList parses a list of double quoted strings. A quote
// inside a string is written twice.
func ParseStringList(v string) []string {
	var r []string
	runes := []rune(v)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '"' {
			continue
		}
		var sb strings.Builder
		i++
		for ; i < len(runes); i++ {
			if runes[i] == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					sb.WriteRune('"')
					i++
					continue
				}
				break
			}
			sb.WriteRune(runes[i])
		}
		r = append(r, sb.String())
	}
	return r
}

func FormatStringList(list []string) string {
	return utils.JoinFunc(list, " ", func(s string) string {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	})
}

////////////////////////////////////////////////////////////////////////////////

// Point is a position value. Unset coordinates are -1.
type Point struct {
	X int
	Y int
}

func (p Point) IsDefault() bool {
	return p.X == -1 && p.Y == -1
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Size is a dimension value. Unset dimensions are -1.
type Size Point

func (s Size) IsDefault() bool {
	return Point(s).IsDefault()
}

func (s Size) String() string {
	return Point(s).String()
}

// ParsePoint parses "x,y". Empty or malformed values yield -1,-1.
func ParsePoint(v string) Point {
	x, y, ok := strings.Cut(v, ",")
	if !ok {
		x, y, ok = strings.Cut(v, ";")
	}
	if !ok {
		return Point{-1, -1}
	}
	px, err1 := strconv.Atoi(strings.TrimSpace(x))
	py, err2 := strconv.Atoi(strings.TrimSpace(y))
	if err1 != nil || err2 != nil {
		return Point{-1, -1}
	}
	return Point{px, py}
}

////////////////////////////////////////////////////////////////////////////////

// Colour is either a system colour name or an RGB triple.
type Colour struct {
	System string
	R, G, B int
	Valid   bool
}

// ParseColour accepts "r,g,b" or a wxSYS_COLOUR_ name.
func ParseColour(v string) Colour {
	v = strings.TrimSpace(v)
	if v == "" {
		return Colour{}
	}
	if strings.HasPrefix(v, "wxSYS_COLOUR_") {
		return Colour{System: v, Valid: true}
	}
	f := utils.SplitTrim(v, ",")
	if len(f) != 3 {
		return Colour{}
	}
	var c [3]int
	for i, s := range f {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 255 {
			return Colour{}
		}
		c[i] = n
	}
	return Colour{R: c[0], G: c[1], B: c[2], Valid: true}
}

func (c Colour) IsSystem() bool {
	return c.System != ""
}

func (c Colour) String() string {
	switch {
	case !c.Valid:
		return ""
	case c.System != "":
		return c.System
	default:
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
	}
}

////////////////////////////////////////////////////////////////////////////////

// Font describes a font as face,style,weight,size,family,underlined.
type Font struct {
	Face       string
	Style      string
	Weight     string
	Size       int
	Family     string
	Underlined bool
}

func ParseFont(v string) Font {
	f := Font{
		Style:  "wxFONTSTYLE_NORMAL",
		Weight: "wxFONTWEIGHT_NORMAL",
		Size:   -1,
		Family: "wxFONTFAMILY_DEFAULT",
	}
	fields := strings.Split(v, ",")
	for i, s := range fields {
		s = strings.TrimSpace(s)
		switch i {
		case 0:
			f.Face = s
		case 1:
			if s != "" {
				f.Style = fontConstant(s, fontStyles)
			}
		case 2:
			if s != "" {
				f.Weight = fontConstant(s, fontWeights)
			}
		case 3:
			if n, err := strconv.Atoi(s); err == nil {
				f.Size = n
			}
		case 4:
			if s != "" {
				f.Family = fontConstant(s, fontFamilies)
			}
		case 5:
			f.Underlined = s == "1" || s == "true"
		}
	}
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s,%s,%s,%d,%s,%s", f.Face, f.Style, f.Weight, f.Size, f.Family, FormatBool(f.Underlined))
}

var fontStyles = map[string]string{
	"90": "wxFONTSTYLE_NORMAL",
	"93": "wxFONTSTYLE_ITALIC",
	"94": "wxFONTSTYLE_SLANT",
}

var fontWeights = map[string]string{
	"90": "wxFONTWEIGHT_NORMAL",
	"91": "wxFONTWEIGHT_LIGHT",
	"92": "wxFONTWEIGHT_BOLD",
}

var fontFamilies = map[string]string{
	"70": "wxFONTFAMILY_DEFAULT",
	"71": "wxFONTFAMILY_DECORATIVE",
	"72": "wxFONTFAMILY_ROMAN",
	"73": "wxFONTFAMILY_SCRIPT",
	"74": "wxFONTFAMILY_SWISS",
	"75": "wxFONTFAMILY_MODERN",
	"76": "wxFONTFAMILY_TELETYPE",
}

// fontConstant maps legacy numeric values to symbolic names.
func fontConstant(s string, m map[string]string) string {
	if c, ok := m[s]; ok {
		return c
	}
	return s
}

////////////////////////////////////////////////////////////////////////////////

const (
	BITMAP_SOURCE_FILE = "Load From File"
	BITMAP_SOURCE_ART  = "Load From Art Provider"
)

// Bitmap is a bitmap reference given as "source; path".
type Bitmap struct {
	Source string
	Path   string
}

func ParseBitmap(v string) Bitmap {
	src, p, ok := strings.Cut(v, ";")
	if !ok {
		p = strings.TrimSpace(v)
		if p == "" {
			return Bitmap{}
		}
		return Bitmap{Source: BITMAP_SOURCE_FILE, Path: p}
	}
	return Bitmap{Source: strings.TrimSpace(src), Path: strings.TrimSpace(p)}
}

func (b Bitmap) String() string {
	if b.Source == "" && b.Path == "" {
		return ""
	}
	return b.Source + "; " + b.Path
}
