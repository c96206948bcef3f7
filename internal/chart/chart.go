// Package chart renders the weight-and-balance envelope of a fully built
// airplane as a standalone SVG: the certified envelope as a polygon in
// (mass moment, mass) space with the takeoff and landing points plotted
// on top. It is a read-only consumer of wb.Airplane.
package chart

import (
	"fmt"
	"strings"

	"github.com/flightprep/loadsheet/internal/wb"
)

// Options controls the chart geometry. Zero values pick defaults.
type Options struct {
	// Width and Height are the SVG pixel dimensions.
	Width  int
	Height int

	// XMin/XMax bound the mass moment axis in kg·m, YMin/YMax the mass
	// axis in kg. Each bound left zero is derived from the envelope with
	// a 15% margin.
	XMin, XMax float64
	YMin, YMax float64
}

const (
	defaultWidth  = 800
	defaultHeight = 600

	marginLeft   = 80
	marginRight  = 20
	marginTop    = 60
	marginBottom = 50

	axisTicks = 5
)

type scale struct {
	opts         Options
	plotW, plotH float64
}

func (s scale) x(v float64) float64 {
	frac := (v - s.opts.XMin) / (s.opts.XMax - s.opts.XMin)
	return marginLeft + frac*s.plotW
}

func (s scale) y(v float64) float64 {
	frac := (v - s.opts.YMin) / (s.opts.YMax - s.opts.YMin)
	return float64(s.opts.Height) - marginBottom - frac*s.plotH
}

// Render draws the envelope chart for the airplane. The landing point
// requires the fuel-last convention to hold; wb's landing errors are
// returned unchanged.
func Render(plane *wb.Airplane, opts Options) ([]byte, error) {
	landingMass, err := plane.TotalMassLanding()
	if err != nil {
		return nil, err
	}
	landingMoment, err := plane.TotalMassMomentLanding()
	if err != nil {
		return nil, err
	}

	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	limits := plane.Limits()
	minKg := limits.MinimumWeight().Kilo()
	mtowKg := limits.MTOW().Kilo()
	fwd := limits.ForwardCGLimit().Meter()
	rear := limits.RearwardCGLimit().Meter()

	xSpan := rear*mtowKg - fwd*minKg
	ySpan := mtowKg - minKg
	if opts.XMin == 0 {
		opts.XMin = fwd*minKg - 0.15*xSpan
	}
	if opts.XMax == 0 {
		opts.XMax = rear*mtowKg + 0.15*xSpan
	}
	if opts.YMin == 0 {
		opts.YMin = minKg - 0.15*ySpan
	}
	if opts.YMax == 0 {
		opts.YMax = mtowKg + 0.15*ySpan
	}

	s := scale{
		opts:  opts,
		plotW: float64(opts.Width - marginLeft - marginRight),
		plotH: float64(opts.Height - marginTop - marginBottom),
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", opts.Width, opts.Height)

	// Caption.
	fmt.Fprintf(&b, `<text x="%d" y="35" font-family="sans-serif" font-size="28" text-anchor="middle">%s</text>`+"\n",
		opts.Width/2, escape(plane.Callsign()))

	writeAxes(&b, s)

	// Envelope polygon: the four corners of the certified (moment, mass)
	// region, counterclockwise from the forward/minimum corner.
	corners := [][2]float64{
		{fwd * minKg, minKg},
		{rear * minKg, minKg},
		{rear * mtowKg, mtowKg},
		{fwd * mtowKg, mtowKg},
	}
	points := make([]string, len(corners))
	for i, c := range corners {
		points[i] = fmt.Sprintf("%.1f,%.1f", s.x(c[0]), s.y(c[1]))
	}
	fmt.Fprintf(&b, `<polygon points="%s" fill="rgba(255,0,0,0.2)" stroke="red"/>`+"\n",
		strings.Join(points, " "))

	// Takeoff point, filled; green inside the envelope, red outside.
	takeoffColor := "red"
	if plane.WithinLimits() {
		takeoffColor = "green"
	}
	fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s"><title>takeoff</title></circle>`+"\n",
		s.x(plane.TotalMassMoment().KgM()), s.y(plane.TotalMass().Kilo()), takeoffColor)

	// Landing point, hollow, judged against the same bounds.
	landingColor := "red"
	if landingWithinLimits(limits, landingMass, landingMoment) {
		landingColor = "green"
	}
	fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="5" fill="none" stroke="%s" stroke-width="2"><title>landing</title></circle>`+"\n",
		s.x(landingMoment.KgM()), s.y(landingMass.Kilo()), landingColor)

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

func writeAxes(b *strings.Builder, s scale) {
	w := s.opts.Width
	h := s.opts.Height

	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		marginLeft, h-marginBottom, w-marginRight, h-marginBottom)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`+"\n",
		marginLeft, marginTop, marginLeft, h-marginBottom)

	for i := 0; i <= axisTicks; i++ {
		frac := float64(i) / axisTicks

		xv := s.opts.XMin + frac*(s.opts.XMax-s.opts.XMin)
		xp := s.x(xv)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="black"/>`+"\n",
			xp, h-marginBottom, xp, h-marginBottom+5)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">%.0f</text>`+"\n",
			xp, h-marginBottom+20, xv)

		yv := s.opts.YMin + frac*(s.opts.YMax-s.opts.YMin)
		yp := s.y(yv)
		fmt.Fprintf(b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="black"/>`+"\n",
			marginLeft-5, yp, marginLeft, yp)
		fmt.Fprintf(b, `<text x="%d" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="end">%.0f</text>`+"\n",
			marginLeft-10, yp+4, yv)
	}

	fmt.Fprintf(b, `<text x="%d" y="%d" font-family="sans-serif" font-size="16" text-anchor="middle">Mass Moment [kg m]</text>`+"\n",
		marginLeft+(w-marginLeft-marginRight)/2, h-8)
	fmt.Fprintf(b, `<text x="20" y="%d" font-family="sans-serif" font-size="16" text-anchor="middle" transform="rotate(-90 20 %d)">Mass [kg]</text>`+"\n",
		marginTop+(h-marginTop-marginBottom)/2, marginTop+(h-marginTop-marginBottom)/2)
}

func landingWithinLimits(limits wb.Limits, mass wb.Mass, moment wb.MassMoment) bool {
	kg := mass.Kilo()
	if kg == 0 {
		return false
	}
	cg := moment.KgM() / kg
	return kg <= limits.MTOW().Kilo() &&
		cg >= limits.ForwardCGLimit().Meter() &&
		cg <= limits.RearwardCGLimit().Meter()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
