package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

// Renderer writes presentations to a terminal with colored verdicts. The
// dark theme uses high-intensity colors.
type Renderer struct {
	w    io.Writer
	dark bool
}

func NewRenderer(w io.Writer, theme string) *Renderer {
	return &Renderer{w: w, dark: theme == "dark"}
}

func (r *Renderer) verdictColor(verdict string) *color.Color {
	var c color.Attribute
	switch strings.ToUpper(verdict) {
	case "AC", "OK", "ACCEPTED":
		c = color.FgGreen
	case "WA", "WRONG ANSWER":
		c = color.FgRed
	case "TLE", "MLE":
		c = color.FgYellow
	case "ERROR":
		c = color.FgRed
	default:
		c = color.FgCyan
	}
	if r.dark {
		// FgHi* attributes sit a fixed offset above their Fg* pairs.
		c += color.FgHiBlack - color.FgBlack
	}
	if strings.ToUpper(verdict) == "ERROR" {
		return color.New(c, color.Bold)
	}
	return color.New(c)
}

// Render writes the verdict and trimmed output.
func (r *Renderer) Render(p Presentation) {
	fmt.Fprintf(r.w, "verdict: %s\n", r.verdictColor(p.Verdict).Sprint(p.Verdict))
	if p.Output != "" {
		fmt.Fprintln(r.w, TrimToRect(p.Output, api.MaxOutputHeight, api.MaxOutputWidth))
	}
}
