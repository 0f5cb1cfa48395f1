package editor

import "strings"

// Language is one of the fixed set of languages the judge accepts.
type Language string

const (
	LangCpp Language = "cpp"
	LangC   Language = "c"
	LangPy  Language = "py"
	LangJS  Language = "js"
)

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{LangCpp, LangC, LangPy, LangJS}
}

// Valid reports whether the judge accepts this language identifier.
func (l Language) Valid() bool {
	switch l {
	case LangCpp, LangC, LangPy, LangJS:
		return true
	}
	return false
}

// Label returns the presentation label for the language.
func (l Language) Label() string {
	switch l {
	case LangCpp:
		return "C++"
	case LangC:
		return "C"
	case LangPy:
		return "Python"
	case LangJS:
		return "JavaScript"
	}
	return string(l)
}

var templates = map[Language]string{
	LangCpp: `#include <bits/stdc++.h>
using namespace std;

int main() {

    return 0;
}
`,
	LangC: `#include <stdio.h>

int main(void) {

    return 0;
}
`,
	LangPy: `def main():
    pass


if __name__ == "__main__":
    main()
`,
	LangJS: `"use strict";

const input = require("fs").readFileSync(0, "utf8");
`,
}

// Template returns the placeholder skeleton for the language.
func Template(l Language) string {
	return templates[l]
}

// IsPlaceholder reports whether text is blank or matches one of the known
// language templates. Comparison ignores leading/trailing whitespace so a
// stray newline does not make real work out of a skeleton.
func IsPlaceholder(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	for _, tpl := range templates {
		if trimmed == strings.TrimSpace(tpl) {
			return true
		}
	}
	return false
}
