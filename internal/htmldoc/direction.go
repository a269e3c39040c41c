package htmldoc

import "unicode"

// Direction is a whole-document paragraph direction. The values match
// the Google Docs API ContentDirection enum so they can be passed
// through unconverted.
type Direction string

const (
	LeftToRight Direction = "LEFT_TO_RIGHT"
	RightToLeft Direction = "RIGHT_TO_LEFT"
)

// DetectDirection selects the document direction by scanning the raw
// HTML source: any Hebrew or Arabic code point anywhere in the payload
// selects right-to-left.
func DetectDirection(source string) Direction {
	for _, r := range source {
		if unicode.Is(unicode.Hebrew, r) || unicode.Is(unicode.Arabic, r) {
			return RightToLeft
		}
	}
	return LeftToRight
}
