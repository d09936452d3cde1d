package dom

import "strings"

// Escaping follows the HTML fragment serialization algorithm: text
// escapes &, <, > and no-break space; attribute values escape &, the
// double quote and no-break space. Children of raw text elements are
// written as is.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "\u00a0", "&nbsp;", `"`, "&quot;")
)

// rawTextElements serialize their text children unescaped.
var rawTextElements = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// voidElements have no end tag and no children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag (lower-case) is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
