package formula

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
)

// RenderOptions controls ordering and charge output of the renderers
type RenderOptions struct {
	Mode          Mode
	IncludeCharge bool
}

// DefaultRenderOptions renders the original text including the charge
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Mode: ModeOriginal, IncludeCharge: true}
}

// Renderer selects an output notation
type Renderer int

const (
	RendererText Renderer = iota
	RendererUnicode
	RendererLaTeX
)

// String returns the renderer name
func (r Renderer) String() string {
	switch r {
	case RendererText:
		return "text"
	case RendererUnicode:
		return "unicode"
	case RendererLaTeX:
		return "latex"
	default:
		return "unknown"
	}
}

// ParseRenderer maps "text", "unicode" and "latex" case-insensitively
func ParseRenderer(s string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "plain":
		return RendererText, nil
	case "unicode":
		return RendererUnicode, nil
	case "latex", "mhchem":
		return RendererLaTeX, nil
	default:
		return RendererText, mdwerror.Newf("unknown renderer %q (want text, unicode or latex)", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("renderer", s)
	}
}

// Renderers lists all renderers in display order
func Renderers() []Renderer {
	return []Renderer{RendererText, RendererUnicode, RendererLaTeX}
}

// Render dispatches to the renderer r
func Render(f *Formula, r Renderer, opts RenderOptions) (string, error) {
	if !opts.Mode.Valid() {
		return "", &InvalidFormatModeError{Mode: strconv.Itoa(int(opts.Mode))}
	}

	switch r {
	case RendererText:
		return Text(f, opts), nil
	case RendererUnicode:
		return Unicode(f, opts), nil
	case RendererLaTeX:
		return LaTeX(f, opts), nil
	default:
		return "", mdwerror.Newf("unknown renderer %d", int(r)).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

// RenderString is Render with the mode given as text, for callers taking
// the mode from user input.
func RenderString(f *Formula, r Renderer, mode string, includeCharge bool) (string, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return "", err
	}
	return Render(f, r, RenderOptions{Mode: m, IncludeCharge: includeCharge})
}

// useOriginal reports whether the verbatim text is rendered
func (f *Formula) useOriginal(mode Mode) bool {
	return mode == ModeOriginal && f.text != ""
}

// Text renders plain ASCII, e.g. "SO42-"
func Text(f *Formula, opts RenderOptions) string {
	var sb strings.Builder

	if f.useOriginal(opts.Mode) {
		sb.WriteString(f.text)
	} else {
		for sym, count := range f.Elements(opts.Mode) {
			sb.WriteString(sym)
			if count > 1 {
				sb.WriteString(strconv.Itoa(count))
			}
		}
	}

	if opts.IncludeCharge {
		sb.WriteString(TextCharge(f.charge))
	}
	return sb.String()
}

// Unicode renders counts as subscripts and the charge as superscript,
// e.g. "SO₄²⁻". In original mode hydration coefficients stay plain digits
// and "*" becomes a middle dot.
func Unicode(f *Formula, opts RenderOptions) string {
	var sb strings.Builder

	if f.useOriginal(opts.Mode) {
		sb.WriteString(unicodeText(f.text))
	} else {
		for sym, count := range f.Elements(opts.Mode) {
			sb.WriteString(sym)
			if count > 1 {
				sb.WriteString(mapDigits(strconv.Itoa(count), subscriptDigits))
			}
		}
	}

	if opts.IncludeCharge {
		sb.WriteString(UnicodeCharge(f.charge))
	}
	return sb.String()
}

// unicodeText subscripts digits that follow a symbol or ")"
func unicodeText(text string) string {
	var sb strings.Builder
	subscript := false

	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if subscript {
				sb.WriteRune(subscriptDigits[r-'0'])
			} else {
				sb.WriteRune(r)
			}
		case r == '*':
			sb.WriteRune('·')
			subscript = false
		default:
			sb.WriteRune(r)
			subscript = r != '('
		}
	}
	return sb.String()
}

// LaTeX renders an mhchem macro, e.g. "\ce{SO4^{2-}}"
func LaTeX(f *Formula, opts RenderOptions) string {
	var sb strings.Builder
	sb.WriteString(`\ce{`)

	if f.useOriginal(opts.Mode) {
		sb.WriteString(escapeLaTeX(f.text))
	} else {
		for sym, count := range f.Elements(opts.Mode) {
			sb.WriteString(sym)
			if count > 1 {
				sb.WriteString(strconv.Itoa(count))
			}
		}
	}

	if opts.IncludeCharge {
		sb.WriteString(latexCharge(f.charge))
	}
	sb.WriteByte('}')
	return sb.String()
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`%`, `\%`,
	`#`, `\#`,
	`&`, `\&`,
	`$`, `\$`,
	`_`, `\_`,
	`^`, `\^{}`,
	`~`, `\~{}`,
)

// escapeLaTeX protects text that was not parsed, e.g. the label of a
// formula built from an explicit composition.
func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// SumFormula returns the text in sum order without charge
func SumFormula(f *Formula) string {
	return Text(f, RenderOptions{Mode: ModeSum})
}

// HillFormula returns the text in Hill order without charge
func HillFormula(f *Formula) string {
	return Text(f, RenderOptions{Mode: ModeHill})
}
