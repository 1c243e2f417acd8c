package textgen

import (
	"fmt"
	"strings"
)

// Length selects how compact the suggested copy should be.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// lengthHints maps a length to heading/description word budgets.
var lengthHints = map[Length]string{
	LengthShort:  "Otsikko enintään 5 sanaa, kuvaus enintään 15 sanaa.",
	LengthMedium: "Otsikko enintään 8 sanaa, kuvaus enintään 30 sanaa.",
	LengthLong:   "Otsikko enintään 12 sanaa, kuvaus enintään 60 sanaa.",
}

// platformHints steers tone per target platform.
var platformHints = map[string]string{
	"instagram": "Sävy: visuaalinen ja napakka, sopii Instagram-julkaisuun.",
	"facebook":  "Sävy: keskusteleva ja informatiivinen, sopii Facebook-julkaisuun.",
	"linkedin":  "Sävy: asiallinen ja ammattimainen, sopii LinkedIn-julkaisuun.",
}

// BuildPrompt renders the Finnish-language prompt for a request.
func BuildPrompt(req SuggestRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olet %s-sanomalehden sosiaalisen median toimittaja.\n", req.BrandName)
	b.WriteString("Kirjoita artikkelista otsikko ja kuvaus sosiaalisen median julkaisuun.\n\n")

	if hint, ok := platformHints[strings.ToLower(req.Platform)]; ok {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	hint, ok := lengthHints[req.Length]
	if !ok {
		hint = lengthHints[LengthMedium]
	}
	b.WriteString(hint)
	b.WriteString("\n\n")

	b.WriteString("Vastaa täsmälleen tässä muodossa:\n")
	b.WriteString("HEADING: <otsikko>\n")
	b.WriteString("DESCRIPTION: <kuvaus>\n\n")

	b.WriteString("Artikkeli:\n")
	b.WriteString(req.ArticleText)

	return b.String()
}
