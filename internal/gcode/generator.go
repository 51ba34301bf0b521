// Package gcode produces CNC profile-cut GCode for a joint template: the
// board outline plus one closed profile per finger/tail, cut in multiple
// depth passes.
package gcode

import (
	"fmt"
	"strings"

	"github.com/piwi3910/JointCut/internal/layout"
	"github.com/piwi3910/JointCut/internal/model"
)

// Settings holds the CNC parameters for a cut.
type Settings struct {
	FeedRate     float64 `json:"feed_rate"`     // cutting feed rate mm/min
	PlungeRate   float64 `json:"plunge_rate"`   // plunge feed rate mm/min
	SpindleSpeed int     `json:"spindle_speed"` // RPM
	SafeZ        float64 `json:"safe_z"`        // safe retract height mm
	CutDepth     float64 `json:"cut_depth"`     // total material thickness mm
	PassDepth    float64 `json:"pass_depth"`    // depth per pass mm
	Profile      string  `json:"profile"`       // post-processor profile name
}

func DefaultSettings() Settings {
	return Settings{
		FeedRate:     1500.0,
		PlungeRate:   500.0,
		SpindleSpeed: 18000,
		SafeZ:        5.0,
		CutDepth:     12.0,
		PassDepth:    4.0,
		Profile:      "Generic",
	}
}

// Profile defines a post-processor configuration for a CNC controller.
type Profile struct {
	Name          string
	Units         string
	StartCode     []string
	SpindleStart  string
	SpindleStop   string
	RapidMove     string
	FeedMove      string
	EndCode       []string
	CommentPrefix string
	DecimalPlaces int
}

var Profiles = []Profile{
	{
		Name:          "Grbl",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "Generic",
		Units:         "mm",
		StartCode:     []string{"G90", "G21"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// GetProfile returns a profile by name, or the Generic profile if not found.
func GetProfile(name string) Profile {
	for _, p := range Profiles {
		if p.Name == name {
			return p
		}
	}
	return Profiles[len(Profiles)-1]
}

// Generator produces GCode from a joint layout plan.
type Generator struct {
	Settings Settings
	profile  Profile
}

func New(settings Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  GetProfile(settings.Profile),
	}
}

// Generate produces the GCode for one template request. Contours are cut
// innermost-first (fingers/tails before the board outline) so parts stay
// supported as long as possible.
func (g *Generator) Generate(req model.Request, plan layout.Plan) string {
	var b strings.Builder

	g.writeHeader(&b, req, plan)

	for i, outline := range plan.Contours() {
		g.writeContour(&b, fmt.Sprintf("profile %d", i+1), outline)
	}
	g.writeContour(&b, "board outline", plan.BoardOutline())

	g.writeFooter(&b)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, req model.Request, plan layout.Plan) {
	p := g.profile

	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" JointCut GCode - %s (request %s)\n", req.Joint, req.ID))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Board: %.1f x %.1f mm\n", plan.Width, plan.Height))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Feed: %.0f mm/min, Plunge: %.0f mm/min\n",
		g.Settings.FeedRate, g.Settings.PlungeRate))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Depth: %.1fmm in %.1fmm passes\n",
		g.Settings.CutDepth, g.Settings.PassDepth))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Profile: %s\n", p.Name))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString("\n")
}

// writeContour traces one closed outline in as many depth passes as the
// pass depth requires.
func (g *Generator) writeContour(b *strings.Builder, label string, outline model.Outline) {
	if len(outline) < 3 {
		return
	}
	p := g.profile
	start := outline[0]

	b.WriteString(p.CommentPrefix + " " + label + "\n")
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(start.X), g.format(start.Y)))

	depth := 0.0
	for depth < g.Settings.CutDepth {
		depth += g.Settings.PassDepth
		if depth > g.Settings.CutDepth {
			depth = g.Settings.CutDepth
		}

		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.FeedMove,
			g.format(-depth), g.format(g.Settings.PlungeRate)))
		for _, pt := range outline[1:] {
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove,
				g.format(pt.X), g.format(pt.Y), g.format(g.Settings.FeedRate)))
		}
		// Close the loop back to the first corner.
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove,
			g.format(start.X), g.format(start.Y), g.format(g.Settings.FeedRate)))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString(p.CommentPrefix + " === Job complete ===\n")
	for _, code := range p.EndCode {
		b.WriteString(code + "\n")
	}
}

func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}
