package statsservice

import (
	"bytes"
	"fmt"

	statsdomain "github.com/ringside-club/ringside/app/modules/stats/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette holds the colors charts render with.
type Palette struct {
	Background drawing.Color
	Text       drawing.Color
	Line       drawing.Color
	Accent     drawing.Color
	Win        drawing.Color
	Lose       drawing.Color
	Draw       drawing.Color
	Ongoing    drawing.Color
}

// DefaultPalette matches the dashboard's badge colors.
func DefaultPalette() Palette {
	return Palette{
		Background: drawing.ColorWhite,
		Text:       drawing.ColorFromHex("333333"),
		Line:       drawing.ColorFromHex("4f46e5"),
		Accent:     drawing.ColorFromHex("f59e0b"),
		Win:        drawing.ColorFromHex("22c55e"),
		Lose:       drawing.ColorFromHex("ef4444"),
		Draw:       drawing.ColorFromHex("3b82f6"),
		Ongoing:    drawing.ColorFromHex("eab308"),
	}
}

// ratingFloor keeps the trend chart's Y axis from hugging the data; the
// dashboard always shows at least the 800 line.
const ratingFloor = 800

// RenderEloChart produces a PNG line chart of a player's rating trend.
func RenderEloChart(series []statsdomain.SeriesPoint, palette Palette) ([]byte, error) {
	if len(series) < 2 {
		return renderNoDataPlaceholder("No rating history yet", palette)
	}

	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	maxRating := float64(ratingFloor)
	for i, p := range series {
		xValues[i] = float64(i)
		yValues[i] = float64(p.Rating)
		if yValues[i] > maxRating {
			maxRating = yValues[i]
		}
	}

	mainSeries := chart.ContinuousSeries{
		Name:    "Elo Rating",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: palette.Line,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.Accent,
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name: "Match",
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("Match %d", int(f))
				}
				return ""
			},
			Style: chart.Style{
				FontColor: palette.Text,
			},
		},
		YAxis: chart.YAxis{
			Name: "Rating",
			Style: chart.Style{
				FontColor: palette.Text,
			},
			Range: &chart.ContinuousRange{
				Min: ratingFloor,
				Max: maxRating + 100,
			},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RenderOutcomeChart produces a PNG donut of a player's win/lose/draw/ongoing
// breakdown.
func RenderOutcomeChart(tally statsdomain.Tally, palette Palette) ([]byte, error) {
	if tally.Total() == 0 {
		return renderNoDataPlaceholder("No matches yet", palette)
	}

	buckets := []struct {
		label string
		count int
		color drawing.Color
	}{
		{label: "Win", count: tally.Wins, color: palette.Win},
		{label: "Lost", count: tally.Losses, color: palette.Lose},
		{label: "Draw", count: tally.Draws, color: palette.Draw},
		{label: "Ongoing", count: tally.Ongoing, color: palette.Ongoing},
	}

	values := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		if b.count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(b.count),
			Label: fmt.Sprintf("%s (%d)", b.label, b.count),
			Style: chart.Style{
				FillColor: b.color,
				FontColor: palette.Text,
			},
		})
	}

	graph := chart.DonutChart{
		Width:  400,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Values: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RenderCombatChart produces a PNG bar chart of a player's combat totals.
func RenderCombatChart(totals statsdomain.CombatTotals, palette Palette) ([]byte, error) {
	if totals == (statsdomain.CombatTotals{}) {
		return renderNoDataPlaceholder("No combat stats yet", palette)
	}

	graph := chart.BarChart{
		Width:    500,
		Height:   400,
		BarWidth: 80,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.Text,
			},
		},
		Bars: []chart.Value{
			{Value: float64(totals.Punches), Label: "Punches", Style: chart.Style{FillColor: palette.Line}},
			{Value: float64(totals.Dodges), Label: "Dodges", Style: chart.Style{FillColor: palette.Draw}},
			{Value: float64(totals.KOs), Label: "KOs", Style: chart.Style{FillColor: palette.Lose}},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string, palette Palette) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{Style: chart.Hidden()},
		// Render requires a series; this one is invisible.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.Text)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
