package server

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/veloreport/models"
	"github.com/veloreport/stats"
)

const fitSamples = 60

func chartTitle(s string) string {
	return cases.Title(language.English).String(s)
}

// speedGradeChart plots every finite (grade, speed) ride point with the
// fitted curve overlaid as a smooth line.
func speedGradeChart(session *models.Session) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("speed vs grade"),
			Subtitle: fmt.Sprintf("Degree-%d least squares fit", session.Estimator.Curve.Degree()),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Grade (ft/mi)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Speed (mph)"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)

	grades, speeds := models.SpeedGradePoints(session.Rides)
	points := make([]opts.ScatterData, len(grades))
	minG, maxG := math.Inf(1), math.Inf(-1)
	for i := range grades {
		points[i] = opts.ScatterData{Value: []interface{}{grades[i], speeds[i]}, SymbolSize: 8}
		minG = math.Min(minG, grades[i])
		maxG = math.Max(maxG, grades[i])
	}
	scatter.AddSeries("Rides", points)

	if len(grades) > 1 && maxG > minG {
		line := charts.NewLine()
		curve := make([]opts.LineData, 0, fitSamples+1)
		for i := 0; i <= fitSamples; i++ {
			x := minG + (maxG-minG)*float64(i)/fitSamples
			curve = append(curve, opts.LineData{Value: []interface{}{x, session.Estimator.Curve.Evaluate(x)}})
		}
		line.AddSeries("Fit", curve,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		scatter.Overlap(line)
	}
	return scatter
}

// yearlyMileageChart totals the ride distances per year, in both units.
func yearlyMileageChart(session *models.Session) *charts.Bar {
	totals := map[int]float64{}
	for _, r := range session.Rides {
		totals[r.Year] += r.Miles
	}
	years := session.Years()
	// Years() is newest first; the axis reads oldest to newest.
	labels := make([]string, 0, len(years))
	miles := make([]opts.BarData, 0, len(years))
	kms := make([]opts.BarData, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		y := years[i]
		labels = append(labels, strconv.Itoa(y))
		miles = append(miles, opts.BarData{Value: math.Round(totals[y])})
		kms = append(kms, opts.BarData{Value: math.Round(totals[y] * stats.KmPerMile)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("distance per year"),
			Subtitle: "Total ride distance by calendar year",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "shadow"},
		}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Miles", miles)
	bar.AddSeries("Km", kms)
	return bar
}

// eddingtonProgressChart recomputes the Eddington number per cutoff year and
// plots the miles and km series side by side.
func eddingtonProgressChart(session *models.Session, progressYears int) *charts.Line {
	years := session.Years()
	if progressYears > 0 && len(years) > progressYears {
		years = years[:progressYears]
	}
	progress := stats.Progress(session.RideDistances(), years)

	labels := make([]string, 0, len(progress))
	miles := make([]opts.LineData, 0, len(progress))
	kms := make([]opts.LineData, 0, len(progress))
	for i := len(progress) - 1; i >= 0; i-- {
		p := progress[i]
		labels = append(labels, strconv.Itoa(p.Year))
		miles = append(miles, opts.LineData{Value: p.Miles})
		kms = append(kms, opts.LineData{Value: p.Km})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("eddington progress"),
			Subtitle: "Eddington number using rides up to each year",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("Miles", miles)
	line.AddSeries("Km", kms)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// eddingtonGapChart shows how many qualifying rides are still needed per
// target. Targets already exceeded render as zero-height bars.
func eddingtonGapChart(session *models.Session, targets []int) *charts.Bar {
	distances := session.Distances()
	current := 0
	if n, err := stats.Number(distances); err == nil {
		current = n
	}

	labels := make([]string, 0, len(targets))
	gaps := make([]opts.BarData, 0, len(targets))
	for _, target := range targets {
		labels = append(labels, strconv.Itoa(target))
		gap := stats.Gap(distances, target)
		if gap < 0 {
			gap = 0
		}
		gaps = append(gaps, opts.BarData{Value: gap})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("eddington targets"),
			Subtitle: fmt.Sprintf("Current number: %d. Bars show rides of at least the target distance still needed.", current),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "shadow"},
		}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Rides needed", gaps)
	return bar
}

// coverageChart plots each place's monthly coverage history. When any place
// carries a special-group tag, only the tagged places start selected in the
// legend; the rest can be toggled on.
func coverageChart(session *models.Session) *charts.Line {
	line := charts.NewLine()
	line.SetXAxis(session.Months)

	hasGroup := false
	for _, p := range session.Places {
		if p.Group != "" {
			hasGroup = true
			break
		}
	}

	selected := map[string]bool{}
	for _, p := range session.SortedPlaces() {
		if len(p.Months) == 0 {
			continue
		}
		data := make([]opts.LineData, len(session.Months))
		for i := range data {
			// "-" marks a month without an update for this place.
			data[i] = opts.LineData{Value: "-"}
		}
		for i, m := range p.Months {
			if m < len(data) {
				data[m] = opts.LineData{Value: p.Pcts[i]}
			}
		}
		line.AddSeries(p.Name, data)
		selected[p.Name] = !hasGroup || p.Group != ""
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("road coverage"),
			Subtitle: "Percent of each place's roads ridden, by month",
		}),
		charts.WithLegendOpts(opts.Legend{
			Bottom:   "bottom",
			Show:     opts.Bool(true),
			Selected: selected,
		}),
		charts.WithGridOpts(opts.Grid{Bottom: "20%"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Covered",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}%"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	return line
}

// paretoChart scatters places by road miles and latest coverage, with the
// non-dominated frontier as its own series.
func paretoChart(session *models.Session) *charts.Scatter {
	var points []stats.ParetoPoint
	for _, p := range session.SortedPlaces() {
		pct, ok := p.LatestPct()
		if !ok {
			continue
		}
		points = append(points, stats.ParetoPoint{Label: p.Name, X: p.Miles, Y: pct})
	}
	frontier := map[string]bool{}
	for _, p := range stats.ParetoFront(points) {
		frontier[p.Label] = true
	}

	var rest, front []opts.ScatterData
	for _, p := range points {
		item := opts.ScatterData{Name: p.Label, Value: []interface{}{p.X, p.Y}, SymbolSize: 10}
		if frontier[p.Label] {
			front = append(front, item)
		} else {
			rest = append(rest, item)
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("coverage frontier"),
			Subtitle: "Places not dominated in both road miles and latest coverage",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Road miles"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latest % covered"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)
	scatter.AddSeries("Places", rest)
	scatter.AddSeries("Frontier", front)
	return scatter
}

// segmentChart bars every recorded attempt: minutes taken and climb rate.
func segmentChart(session *models.Session) *charts.Bar {
	counts := map[string]int{}
	labels := make([]string, 0, len(session.Segments))
	minutes := make([]opts.BarData, 0, len(session.Segments))
	vams := make([]opts.BarData, 0, len(session.Segments))
	for _, a := range session.Segments {
		counts[a.Title]++
		labels = append(labels, fmt.Sprintf("%s #%d", a.Title, counts[a.Title]))
		minutes = append(minutes, opts.BarData{Value: math.Round(a.Hours * 60)})
		vams = append(vams, opts.BarData{Value: a.VAM})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle("segment attempts"),
			Subtitle: "Minutes and climb rate per recorded attempt",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "shadow"},
		}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Minutes", minutes)
	bar.AddSeries("VAM (m/h)", vams)
	return bar
}
