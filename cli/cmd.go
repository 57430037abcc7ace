package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"mathpad/calc"
	"mathpad/ui"
)

type uiCmd struct{}

func (uiCmd) Run(kit *Kit) error {
	kit.Log.Debug("starting widget",
		slog.Float64("plot_min", kit.Config.Plot.Min),
		slog.Float64("plot_max", kit.Config.Plot.Max),
		slog.Int("plot_steps", kit.Config.Plot.Steps),
	)
	return ui.Run(kit.Ctx, kit.Config.Sampler(), kit.Config.Table())
}

type evalCmd struct {
	Exprs []string `arg:"" name:"expr" help:"Expressions to evaluate."`
}

func (c *evalCmd) Run(kit *Kit) error {
	for _, src := range c.Exprs {
		v, err := calc.Evaluate(src)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		fmt.Fprintln(kit.Stdout, calc.Format(v))
	}
	return nil
}

type convertCmd struct {
	Amount float64 `arg:"" help:"Amount to convert."`
	From   string  `arg:"" help:"Source currency code."`
	To     string  `arg:"" help:"Target currency code."`
}

func (c *convertCmd) Run(kit *Kit) error {
	from := strings.ToUpper(c.From)
	to := strings.ToUpper(c.To)
	out, err := kit.Config.Table().Convert(c.Amount, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(kit.Stdout, strconv.FormatFloat(out, 'f', 2, 64)+" "+to)
	return nil
}
