// Package fonts provides the label typefaces shared by the PDF and PNG
// renderers.
//
// The Go font family ships as TTF data inside golang.org/x/image, so the
// binary needs no font files on disk and both raster and vector output
// measure text against identical glyph metrics.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is the CSS font-family stack used in HTML output.
const Family = "Helvetica, Arial, sans-serif"

// RegularTTF returns the raw TTF bytes of the regular weight.
func RegularTTF() []byte {
	return goregular.TTF
}

// BoldTTF returns the raw TTF bytes of the bold weight.
func BoldTTF() []byte {
	return gobold.TTF
}

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
)

func parse() {
	// The embedded fonts are well-formed; a parse failure here is a
	// build defect, not a runtime condition.
	var err error
	regular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic("fonts: parse goregular: " + err.Error())
	}
	bold, err = truetype.Parse(gobold.TTF)
	if err != nil {
		panic("fonts: parse gobold: " + err.Error())
	}
}

// Regular returns the parsed regular-weight font. The result is shared;
// callers must not mutate it.
func Regular() *truetype.Font {
	parseOnce.Do(parse)
	return regular
}

// Bold returns the parsed bold-weight font. The result is shared; callers
// must not mutate it.
func Bold() *truetype.Font {
	parseOnce.Do(parse)
	return bold
}
