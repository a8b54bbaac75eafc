// SPDX-License-Identifier: GPL-2.0-or-later

package glsl

import (
	"fmt"
	"regexp"
	"strings"
)

// A rule renames whole-token occurrences of its pattern within one line.
// Identifier rules skip occurrences in call position (token followed by an
// opening paren, with optional whitespace in between); call rules match only
// those. The distinction keeps a variable named texture apart from the
// texture() builtin.
type rule struct {
	re   *regexp.Regexp
	repl string
	call bool
}

func (r rule) apply(line string) string {
	locs := r.re.FindAllStringIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if callFollows(line, loc[1]) != r.call {
			continue
		}
		b.WriteString(line[last:loc[0]])
		b.WriteString(r.repl)
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

func callFollows(s string, i int) bool {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i < len(s) && s[i] == '('
}

func ident(names, repl string) rule {
	return rule{re: regexp.MustCompile(`\b(?:` + names + `)\b`), repl: repl}
}

func fn(names, repl string) rule {
	return rule{re: regexp.MustCompile(`\b(?:` + names + `)\b`), repl: repl, call: true}
}

// The rules must run in exactly this order: texture has to become texMap
// before the sampler calls are renamed to texture, otherwise the freshly
// introduced function name would be clobbered by the variable rename.
var (
	vertexRules = []rule{
		ident("varying", "out"),
		ident("attribute", "in"),
		ident("texture", "texMap"),
		fn("texture2DRect|texture2D|texture3D|textureCube", "texture"),
	}
	fragmentRules = []rule{
		ident("varying|attribute", "in"),
		ident("texture", "texMap"),
		fn("texture2DRect|texture2D|texture3D|textureCube", "texture"),
		ident("gl_FragColor", "_fragColor"),
	}
)

// Preprocess rewrites source for the given stage and target version label.
//
// A source that already carries a #version directive is returned untouched:
// the author has opted out. Otherwise a #version line is synthesized and, for
// targets of 130 and up, the legacy identifiers (varying, attribute,
// gl_FragColor, the texture* sampler calls) are renamed to their modern
// equivalents line by line.
func Preprocess(source string, stage Stage, versionLabel string) (string, error) {
	token, err := VersionToken(versionLabel)
	if err != nil {
		return "", err
	}

	if strings.Contains(source, "#version") {
		return source, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#version %d\n", token)

	if token < 130 {
		b.WriteString(source)
		return b.String(), nil
	}

	var rules []rule
	switch stage {
	case Vertex:
		rules = vertexRules
	case Fragment:
		rules = fragmentRules
		b.WriteString("out vec4 _fragColor;\n")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStage, stage)
	}

	for _, line := range strings.Split(source, "\n") {
		for _, r := range rules {
			line = r.apply(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
