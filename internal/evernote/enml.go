package evernote

import "strings"

// ENML envelope pieces. Caller content is passed through verbatim: the API
// accepts HTML fragments inside <en-note> and escaping here would corrupt
// them. Literal reserved characters in plain-text input therefore survive
// unescaped; callers wanting well-formed ENML must escape before calling.
const (
	enmlPrologue = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<!DOCTYPE en-note SYSTEM \"http://xml.evernote.com/pub/enml2.dtd\">\n" +
		"<en-note>"
	enmlEpilogue = "</en-note>"
)

// WrapENML wraps raw text/HTML content in the fixed ENML document envelope.
// Pure string concatenation, no parsing or escaping.
func WrapENML(content string) string {
	return enmlPrologue + content + enmlEpilogue
}

// UnwrapENML strips the fixed envelope by position, recovering the original
// content byte-for-byte. Returns false if the input does not carry the
// envelope produced by WrapENML.
func UnwrapENML(enml string) (string, bool) {
	if !strings.HasPrefix(enml, enmlPrologue) || !strings.HasSuffix(enml, enmlEpilogue) {
		return "", false
	}
	return enml[len(enmlPrologue) : len(enml)-len(enmlEpilogue)], true
}
