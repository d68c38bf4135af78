// Package chart renders the analysis charts as standalone SVG files.
// Layout is fixed-size with linear value mapping, so the output is
// deterministic for a given dataset.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/ajstarks/svgo"

	"github.com/pable/go-nba-metrics/internal/analysis"
	"github.com/pable/go-nba-metrics/internal/model"
)

const (
	chartW  = 1400
	chartH  = 1040
	headerH = 40
	panelW  = 700
	panelH  = 500

	netW = 900
	netH = 600

	marginL = 70
	marginR = 70
	marginT = 48
	marginB = 64
)

const axisStyle = "stroke:black;stroke-width:1"

// ClutchOverview writes the four-panel clutch summary for one player:
// shooting splits by season, the averaged regular-vs-clutch comparison,
// the shot-distance profile, and the advanced-stat trend.
func ClutchOverview(w io.Writer, playerName string, seasons []model.SeasonClutch) {
	c := svg.New(w)
	c.Start(chartW, chartH)
	c.Rect(0, 0, chartW, chartH, "fill:white")
	c.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:13px")

	heading := fmt.Sprintf("%s Clutch Analysis", playerName)
	if len(seasons) > 0 {
		heading = fmt.Sprintf("%s Clutch Analysis (%s to %s)",
			playerName, seasons[0].Season, seasons[len(seasons)-1].Season)
	}
	c.Text(chartW/2, 26, heading, "text-anchor:middle;font-size:20px;font-weight:bold")

	drawShootingPanel(newPanel(c, 0, headerH, panelW, panelH), seasons)
	drawComparisonPanel(newPanel(c, panelW, headerH, panelW, panelH), analysis.Compare(seasons))
	drawShotProfilePanel(newPanel(c, 0, headerH+panelH, panelW, panelH), analysis.ShotProfile(seasons))
	drawAdvancedPanel(newPanel(c, panelW, headerH+panelH, panelW, panelH), seasons)

	c.Gend()
	c.End()
}

// NetRatingChart writes the grouped-bar comparison of regular, clutch,
// and playoff net ratings per season, with a zero reference line.
func NetRatingChart(w io.Writer, playerName string, rows []model.NetRatingSeason) {
	c := svg.New(w)
	c.Start(netW, netH)
	c.Rect(0, 0, netW, netH, "fill:white")
	c.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:13px")
	c.Text(netW/2, 26, fmt.Sprintf("%s Net Rating by Situation", playerName),
		"text-anchor:middle;font-size:20px;font-weight:bold")

	p := newPanel(c, 0, headerH, netW, netH-headerH)

	lo, hi := 0.0, 0.0
	any := false
	for _, r := range rows {
		for _, v := range []*float64{r.Regular, r.Clutch, r.Playoffs} {
			if v != nil {
				any = true
				lo = math.Min(lo, *v)
				hi = math.Max(hi, *v)
			}
		}
	}
	if !any {
		p.note("No net rating data")
		c.Gend()
		c.End()
		return
	}

	pad := math.Max((hi-lo)*0.1, 1)
	p.setLeftRange(lo-pad, hi+pad)
	p.frame()
	p.leftTicks(numTick)

	zy := p.yLeft(0)
	c.Line(p.plotX(), zy, p.plotX()+p.plotW(), zy, "stroke:red;stroke-opacity:0.3;stroke-width:1")

	n := len(rows)
	bw := min(24, p.plotW()/(n*4))
	for i, r := range rows {
		cx := p.slotX(i, n)
		if r.Regular != nil {
			p.barLeft(cx-bw-2, bw, *r.Regular, "royalblue")
		}
		if r.Clutch != nil {
			p.barLeft(cx, bw, *r.Clutch, "orangered")
		}
		if r.Playoffs != nil {
			p.barLeft(cx+bw+2, bw, *r.Playoffs, "seagreen")
		}
		p.xLabel(cx, r.Season)
	}
	p.legend([]legendItem{
		{"Regular Season", "royalblue"},
		{"Clutch", "orangered"},
		{"Playoffs", "seagreen"},
	})

	c.Gend()
	c.End()
}

// ---- Panels ----

func drawShootingPanel(p *panel, seasons []model.SeasonClutch) {
	p.title("Clutch Shooting by Season")

	var rows []model.SeasonClutch
	for _, s := range seasons {
		if s.Base != nil {
			rows = append(rows, s)
		}
	}
	if len(rows) == 0 {
		p.note("No clutch data")
		return
	}

	p.setLeftRange(0, 1)
	p.frame()
	p.leftTicks(pctTick)

	bw := min(22, p.plotW()/(len(rows)*4))
	for i, s := range rows {
		cx := p.slotX(i, len(rows))
		p.barLeft(cx-bw, bw, s.Base.FGPct, "steelblue")
		p.barLeft(cx, bw, s.Base.FG3Pct, "darkorange")
		p.barLeft(cx+bw, bw, s.Base.FTPct, "seagreen")
		p.xLabel(cx, s.Season)
	}
	p.legend([]legendItem{
		{"FG%", "steelblue"},
		{"3P%", "darkorange"},
		{"FT%", "seagreen"},
	})
}

func drawComparisonPanel(p *panel, cmp model.Comparison) {
	p.title("Regular Season vs Clutch (Averages)")
	if cmp.Seasons == 0 {
		p.note("No seasons with both splits")
		return
	}

	type metric struct {
		label  string
		reg    float64
		clutch float64
		pct    bool
	}
	metrics := []metric{
		{"PTS", cmp.Regular.Points, cmp.Clutch.Points, false},
		{"AST", cmp.Regular.Assists, cmp.Clutch.Assists, false},
		{"TOV", cmp.Regular.Turnovers, cmp.Clutch.Turnovers, false},
		{"AST/TOV", cmp.Regular.AssistToTurnover, cmp.Clutch.AssistToTurnover, false},
		{"FG%", cmp.Regular.FGPct, cmp.Clutch.FGPct, true},
		{"3P%", cmp.Regular.FG3Pct, cmp.Clutch.FG3Pct, true},
		{"FT%", cmp.Regular.FTPct, cmp.Clutch.FTPct, true},
	}

	maxCount := 1.0
	for _, m := range metrics {
		if !m.pct {
			maxCount = math.Max(maxCount, math.Max(m.reg, m.clutch))
		}
	}
	p.setLeftRange(0, maxCount*1.15)
	p.setRightRange(0, 1)
	p.frame()
	p.leftTicks(numTick)
	p.rightTicks(pctTick)

	bw := min(18, p.plotW()/(len(metrics)*3))
	for i, m := range metrics {
		cx := p.slotX(i, len(metrics))
		if m.pct {
			p.barRight(cx-bw/2-1, bw, m.reg, "lightblue")
			p.barRight(cx+bw/2+1, bw, m.clutch, "lightsalmon")
		} else {
			p.barLeft(cx-bw/2-1, bw, m.reg, "royalblue")
			p.barLeft(cx+bw/2+1, bw, m.clutch, "orangered")
		}
		p.xLabel(cx, m.label)
	}
	p.legend([]legendItem{
		{"Regular", "royalblue"},
		{"Clutch", "orangered"},
		{"Regular %", "lightblue"},
		{"Clutch %", "lightsalmon"},
	})
}

func drawShotProfilePanel(p *panel, profile []model.ShotProfileBin) {
	p.title("Clutch Shot Distance Profile")

	hasData := false
	maxShare := 0.0
	for _, b := range profile {
		if b.AttemptShare > 0 || b.Pct != nil {
			hasData = true
		}
		maxShare = math.Max(maxShare, b.AttemptShare)
	}
	if !hasData {
		p.note("No shot data")
		return
	}

	p.setLeftRange(0, math.Max(maxShare*1.15, 0.1))
	p.setRightRange(0, 1)
	p.frame()
	p.leftTicks(pctTick)
	p.rightTicks(pctTick)

	n := len(profile)
	bw := min(40, p.plotW()/(n*2))
	type point struct{ x, y int }
	var pts []point
	for i, b := range profile {
		cx := p.slotX(i, n)
		p.barLeft(cx, bw, b.AttemptShare, "skyblue")
		p.xLabel(cx, b.Label)
		if b.Pct != nil {
			pts = append(pts, point{cx, p.yRight(*b.Pct)})
		}
	}
	for i := 0; i+1 < len(pts); i++ {
		p.c.Line(pts[i].x, pts[i].y, pts[i+1].x, pts[i+1].y, "stroke:red;stroke-width:2")
	}
	for _, q := range pts {
		p.c.Circle(q.x, q.y, 5, "fill:red")
	}
	p.legend([]legendItem{
		{"% of FGA", "skyblue"},
		{"FG%", "red"},
	})
}

func drawAdvancedPanel(p *panel, seasons []model.SeasonClutch) {
	p.title("Clutch Advanced Trend")

	var rows []model.SeasonClutch
	for _, s := range seasons {
		if s.Advanced != nil {
			rows = append(rows, s)
		}
	}
	if len(rows) == 0 {
		p.note("No advanced data")
		return
	}

	seriesVals := func(s model.SeasonClutch) [3]float64 {
		return [3]float64{
			s.Advanced.NetRating,
			s.Advanced.UsagePct * 100,
			s.Advanced.TrueShootingPct * 100,
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range rows {
		for _, v := range seriesVals(s) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	pad := math.Max((hi-lo)*0.1, 1)
	p.setLeftRange(lo-pad, hi+pad)
	p.frame()
	p.leftTicks(numTick)

	colors := [3]string{"blue", "green", "red"}
	n := len(rows)
	prevX := 0
	var prevY [3]int
	for i, s := range rows {
		cx := p.slotX(i, n)
		v := seriesVals(s)
		for k := 0; k < 3; k++ {
			y := p.yLeft(v[k])
			if i > 0 {
				p.c.Line(prevX, prevY[k], cx, y, "stroke:"+colors[k]+";stroke-width:2")
			}
			p.c.Circle(cx, y, 4, "fill:"+colors[k])
			prevY[k] = y
		}
		prevX = cx
		p.xLabel(cx, s.Season)
	}
	p.legend([]legendItem{
		{"NET RTG", "blue"},
		{"USG%", "green"},
		{"TS%", "red"},
	})
}

// ---- Panel geometry ----

type legendItem struct {
	label string
	color string
}

// panel is one plotting area inside the canvas, with independent left
// and right value scales.
type panel struct {
	c          *svg.SVG
	x, y, w, h int
	loL, hiL   float64
	loR, hiR   float64
}

func newPanel(c *svg.SVG, x, y, w, h int) *panel {
	return &panel{c: c, x: x, y: y, w: w, h: h, hiL: 1, hiR: 1}
}

func (p *panel) setLeftRange(lo, hi float64) {
	if hi <= lo {
		hi = lo + 1
	}
	p.loL, p.hiL = lo, hi
}

func (p *panel) setRightRange(lo, hi float64) {
	if hi <= lo {
		hi = lo + 1
	}
	p.loR, p.hiR = lo, hi
}

func (p *panel) plotX() int { return p.x + marginL }
func (p *panel) plotY() int { return p.y + marginT }
func (p *panel) plotW() int { return p.w - marginL - marginR }
func (p *panel) plotH() int { return p.h - marginT - marginB }

func (p *panel) yLeft(v float64) int {
	return int(vmap(v, p.loL, p.hiL, float64(p.plotY()+p.plotH()), float64(p.plotY())))
}

func (p *panel) yRight(v float64) int {
	return int(vmap(v, p.loR, p.hiR, float64(p.plotY()+p.plotH()), float64(p.plotY())))
}

// slotX returns the center x of slot i out of n across the plot width.
func (p *panel) slotX(i, n int) int {
	return p.plotX() + p.plotW()*(2*i+1)/(2*n)
}

func (p *panel) title(s string) {
	p.c.Text(p.x+p.w/2, p.y+28, s, "text-anchor:middle;font-size:17px;font-weight:bold")
}

func (p *panel) note(s string) {
	p.c.Text(p.x+p.w/2, p.y+p.h/2, s, "text-anchor:middle;font-size:14px;fill:gray")
}

func (p *panel) frame() {
	px, py, pw, ph := p.plotX(), p.plotY(), p.plotW(), p.plotH()
	p.c.Line(px, py, px, py+ph, axisStyle)
	p.c.Line(px, py+ph, px+pw, py+ph, axisStyle)
}

func (p *panel) leftTicks(format func(float64) string) {
	for _, v := range []float64{p.loL, (p.loL + p.hiL) / 2, p.hiL} {
		y := p.yLeft(v)
		p.c.Line(p.plotX(), y, p.plotX()+p.plotW(), y, "stroke:#eeeeee;stroke-width:1")
		p.c.Text(p.plotX()-8, y+4, format(v), "text-anchor:end;font-size:11px;fill:gray")
	}
}

func (p *panel) rightTicks(format func(float64) string) {
	for _, v := range []float64{p.loR, (p.loR + p.hiR) / 2, p.hiR} {
		y := p.yRight(v)
		p.c.Text(p.plotX()+p.plotW()+8, y+4, format(v), "text-anchor:start;font-size:11px;fill:gray")
	}
}

// barLeft draws a bar centered on cx from the zero baseline (clamped to
// the axis range) to v, on the left scale.
func (p *panel) barLeft(cx, width int, v float64, color string) {
	p.bar(cx, width, v, color, p.loL, p.yLeft)
}

// barRight is barLeft on the right scale.
func (p *panel) barRight(cx, width int, v float64, color string) {
	p.bar(cx, width, v, color, p.loR, p.yRight)
}

func (p *panel) bar(cx, width int, v float64, color string, lo float64, yFor func(float64) int) {
	base := 0.0
	if base < lo {
		base = lo
	}
	y0 := yFor(base)
	y1 := yFor(v)
	top := min(y0, y1)
	h := y0 - y1
	if h < 0 {
		h = -h
	}
	if h == 0 {
		return
	}
	p.c.Rect(cx-width/2, top, width, h, "fill:"+color)
}

func (p *panel) xLabel(cx int, s string) {
	p.c.Text(cx, p.plotY()+p.plotH()+20, s, "text-anchor:middle;font-size:11px")
}

func (p *panel) legend(items []legendItem) {
	lx := p.x + p.w - marginR - 120
	ly := p.y + marginT + 6
	for i, it := range items {
		yy := ly + i*18
		p.c.Rect(lx, yy, 12, 12, "fill:"+it.color)
		p.c.Text(lx+18, yy+10, it.label, "text-anchor:start;font-size:11px")
	}
}

func pctTick(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }
func numTick(v float64) string { return fmt.Sprintf("%.1f", v) }

// vmap linearly maps value from one range onto another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}
