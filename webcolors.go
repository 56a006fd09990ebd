package pix

import "strings"

// The 16 basic HTML colors, ready to use as draw colors.
var (
	White   = RGB(255, 255, 255)
	Silver  = RGB(192, 192, 192)
	Gray    = RGB(128, 128, 128)
	Black   = RGB(0, 0, 0)
	Red     = RGB(255, 0, 0)
	Maroon  = RGB(128, 0, 0)
	Yellow  = RGB(255, 255, 0)
	Olive   = RGB(128, 128, 0)
	Lime    = RGB(0, 255, 0)
	Green   = RGB(0, 128, 0)
	Aqua    = RGB(0, 255, 255)
	Teal    = RGB(0, 128, 128)
	Blue    = RGB(0, 0, 255)
	Navy    = RGB(0, 0, 128)
	Fuchsia = RGB(255, 0, 255)
	Purple  = RGB(128, 0, 128)
)

// webColors maps lower-case CSS3 color names to their values. Built once;
// never mutated at runtime.
var webColors = map[string]Color{
	"aliceblue":            Hex("#f0f8ff"),
	"antiquewhite":         Hex("#faebd7"),
	"aqua":                 Aqua,
	"aquamarine":           Hex("#7fffd4"),
	"azure":                Hex("#f0ffff"),
	"beige":                Hex("#f5f5dc"),
	"bisque":               Hex("#ffe4c4"),
	"black":                Black,
	"blanchedalmond":       Hex("#ffebcd"),
	"blue":                 Blue,
	"blueviolet":           Hex("#8a2be2"),
	"brown":                Hex("#a52a2a"),
	"burlywood":            Hex("#deb887"),
	"cadetblue":            Hex("#5f9ea0"),
	"chartreuse":           Hex("#7fff00"),
	"chocolate":            Hex("#d2691e"),
	"coral":                Hex("#ff7f50"),
	"cornflowerblue":       Hex("#6495ed"),
	"cornsilk":             Hex("#fff8dc"),
	"crimson":              Hex("#dc143c"),
	"cyan":                 Aqua,
	"darkblue":             Hex("#00008b"),
	"darkcyan":             Hex("#008b8b"),
	"darkgoldenrod":        Hex("#b8860b"),
	"darkgray":             Hex("#a9a9a9"),
	"darkgreen":            Hex("#006400"),
	"darkkhaki":            Hex("#bdb76b"),
	"darkmagenta":          Hex("#8b008b"),
	"darkolivegreen":       Hex("#556b2f"),
	"darkorange":           Hex("#ff8c00"),
	"darkorchid":           Hex("#9932cc"),
	"darkred":              Hex("#8b0000"),
	"darksalmon":           Hex("#e9967a"),
	"darkseagreen":         Hex("#8fbc8f"),
	"darkslateblue":        Hex("#483d8b"),
	"darkslategray":        Hex("#2f4f4f"),
	"darkturquoise":        Hex("#00ced1"),
	"darkviolet":           Hex("#9400d3"),
	"deeppink":             Hex("#ff1493"),
	"deepskyblue":          Hex("#00bfff"),
	"dimgray":              Hex("#696969"),
	"dodgerblue":           Hex("#1e90ff"),
	"firebrick":            Hex("#b22222"),
	"floralwhite":          Hex("#fffaf0"),
	"forestgreen":          Hex("#228b22"),
	"fuchsia":              Fuchsia,
	"gainsboro":            Hex("#dcdcdc"),
	"ghostwhite":           Hex("#f8f8ff"),
	"gold":                 Hex("#ffd700"),
	"goldenrod":            Hex("#daa520"),
	"gray":                 Gray,
	"green":                Green,
	"greenyellow":          Hex("#adff2f"),
	"honeydew":             Hex("#f0fff0"),
	"hotpink":              Hex("#ff69b4"),
	"indianred":            Hex("#cd5c5c"),
	"indigo":               Hex("#4b0082"),
	"ivory":                Hex("#fffff0"),
	"khaki":                Hex("#f0e68c"),
	"lavender":             Hex("#e6e6fa"),
	"lavenderblush":        Hex("#fff0f5"),
	"lawngreen":            Hex("#7cfc00"),
	"lemonchiffon":         Hex("#fffacd"),
	"lightblue":            Hex("#add8e6"),
	"lightcoral":           Hex("#f08080"),
	"lightcyan":            Hex("#e0ffff"),
	"lightgoldenrodyellow": Hex("#fafad2"),
	"lightgray":            Hex("#d3d3d3"),
	"lightgreen":           Hex("#90ee90"),
	"lightpink":            Hex("#ffb6c1"),
	"lightsalmon":          Hex("#ffa07a"),
	"lightseagreen":        Hex("#20b2aa"),
	"lightskyblue":         Hex("#87cefa"),
	"lightslategray":       Hex("#778899"),
	"lightsteelblue":       Hex("#b0c4de"),
	"lightyellow":          Hex("#ffffe0"),
	"lime":                 Lime,
	"limegreen":            Hex("#32cd32"),
	"linen":                Hex("#faf0e6"),
	"magenta":              Fuchsia,
	"maroon":               Maroon,
	"mediumaquamarine":     Hex("#66cdaa"),
	"mediumblue":           Hex("#0000cd"),
	"mediumorchid":         Hex("#ba55d3"),
	"mediumpurple":         Hex("#9370db"),
	"mediumseagreen":       Hex("#3cb371"),
	"mediumslateblue":      Hex("#7b68ee"),
	"mediumspringgreen":    Hex("#00fa9a"),
	"mediumturquoise":      Hex("#48d1cc"),
	"mediumvioletred":      Hex("#c71585"),
	"midnightblue":         Hex("#191970"),
	"mintcream":            Hex("#f5fffa"),
	"mistyrose":            Hex("#ffe4e1"),
	"moccasin":             Hex("#ffe4b5"),
	"navajowhite":          Hex("#ffdead"),
	"navy":                 Navy,
	"oldlace":              Hex("#fdf5e6"),
	"olive":                Olive,
	"olivedrab":            Hex("#6b8e23"),
	"orange":               Hex("#ffa500"),
	"orangered":            Hex("#ff4500"),
	"orchid":               Hex("#da70d6"),
	"palegoldenrod":        Hex("#eee8aa"),
	"palegreen":            Hex("#98fb98"),
	"paleturquoise":        Hex("#afeeee"),
	"palevioletred":        Hex("#db7093"),
	"papayawhip":           Hex("#ffefd5"),
	"peachpuff":            Hex("#ffdab9"),
	"peru":                 Hex("#cd853f"),
	"pink":                 Hex("#ffc0cb"),
	"plum":                 Hex("#dda0dd"),
	"powderblue":           Hex("#b0e0e6"),
	"purple":               Purple,
	"red":                  Red,
	"rosybrown":            Hex("#bc8f8f"),
	"royalblue":            Hex("#4169e1"),
	"saddlebrown":          Hex("#8b4513"),
	"salmon":               Hex("#fa8072"),
	"sandybrown":           Hex("#f4a460"),
	"seagreen":             Hex("#2e8b57"),
	"seashell":             Hex("#fff5ee"),
	"sienna":               Hex("#a0522d"),
	"silver":               Silver,
	"skyblue":              Hex("#87ceeb"),
	"slateblue":            Hex("#6a5acd"),
	"slategray":            Hex("#708090"),
	"snow":                 Hex("#fffafa"),
	"springgreen":          Hex("#00ff7f"),
	"steelblue":            Hex("#4682b4"),
	"tan":                  Hex("#d2b48c"),
	"teal":                 Teal,
	"thistle":              Hex("#d8bfd8"),
	"tomato":               Hex("#ff6347"),
	"turquoise":            Hex("#40e0d0"),
	"violet":               Hex("#ee82ee"),
	"wheat":                Hex("#f5deb3"),
	"white":                White,
	"whitesmoke":           Hex("#f5f5f5"),
	"yellow":               Yellow,
	"yellowgreen":          Hex("#9acd32"),
}

// ColorByName looks up a CSS3 color name. Lookup is case-insensitive.
func ColorByName(name string) (Color, bool) {
	c, ok := webColors[strings.ToLower(name)]
	return c, ok
}
