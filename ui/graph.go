package ui

import (
	"math"
	"strconv"
	"strings"

	"mathpad/plot"
)

// renderGraph draws a sampled series into a width by height character grid.
// Gap samples break the drawn line. The grid is rebuilt from scratch on
// every call; nothing is retained between plots.
func renderGraph(samples []plot.Sample, width, height int) string {
	if width < 8 || height < 2 || len(samples) == 0 {
		return ""
	}
	xmin := samples[0].X
	xmax := samples[len(samples)-1].X
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if s.Gap {
			continue
		}
		ymin = math.Min(ymin, s.Y)
		ymax = math.Max(ymax, s.Y)
	}
	if ymin > ymax {
		return "no finite values in domain"
	}
	if ymin == ymax {
		// Flat series still needs a nonzero range to map onto rows.
		ymin, ymax = ymin-1, ymax+1
	}
	if xmin == xmax {
		xmin, xmax = xmin-1, xmax+1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	col := func(x float64) int {
		return clamp(int(math.Round((x-xmin)/(xmax-xmin)*float64(width-1))), 0, width-1)
	}
	row := func(y float64) int {
		return clamp(int(math.Round((ymax-y)/(ymax-ymin)*float64(height-1))), 0, height-1)
	}

	// Axes first so the curve draws over them.
	if ymin <= 0 && 0 <= ymax {
		r := row(0)
		for j := 0; j < width; j++ {
			grid[r][j] = '─'
		}
	}
	if xmin <= 0 && 0 <= xmax {
		c := col(0)
		for i := 0; i < height; i++ {
			if grid[i][c] == '─' {
				grid[i][c] = '┼'
			} else {
				grid[i][c] = '│'
			}
		}
	}

	prevR, prevC := 0, 0
	havePrev := false
	for _, s := range samples {
		if s.Gap {
			havePrev = false
			continue
		}
		r, c := row(s.Y), col(s.X)
		grid[r][c] = '•'
		if havePrev && c != prevC {
			// Fill the columns the grid skips so the line reads as
			// connected rather than as scattered dots.
			for j := prevC + 1; j < c; j++ {
				t := float64(j-prevC) / float64(c-prevC)
				ri := prevR + int(math.Round(t*float64(r-prevR)))
				grid[ri][j] = '·'
			}
		} else if havePrev && r != prevR {
			lo, hi := min(r, prevR), max(r, prevR)
			for i := lo + 1; i < hi; i++ {
				grid[i][c] = '·'
			}
		}
		prevR, prevC = r, c
		havePrev = true
	}

	var b strings.Builder
	for i, line := range grid {
		b.WriteString(string(line))
		if i < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// axisLabel formats an axis bound compactly.
func axisLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// yBounds reports the y range the graph was scaled to, for labeling.
func yBounds(samples []plot.Sample) (ymin, ymax float64, ok bool) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if s.Gap {
			continue
		}
		ymin = math.Min(ymin, s.Y)
		ymax = math.Max(ymax, s.Y)
	}
	if ymin > ymax {
		return 0, 0, false
	}
	return ymin, ymax, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
