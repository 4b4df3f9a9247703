// alterquote prices clothing-alteration quotes from the command line.
//
// Usage:
//
//	alterquote estimate --item "Dress repair" [--distance 5] [--json]
//	alterquote review [--distance 5] [--json]
//	alterquote list
//	alterquote submit --name Ann --item "Skirt hem" --image a.jpg [--image b.jpg] [--remove-image 0]
//	alterquote accept 1
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"alterquote/internal/logger"
	"alterquote/internal/modules/pricing"
	"alterquote/internal/modules/quote"
	"alterquote/internal/types"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Get().Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "alterquote",
		Usage:   "Estimate clothing-alteration quotes including round-trip transport",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return logger.Init(c.String("log-level"))
		},
		Commands: []*cli.Command{
			estimateCommand(),
			reviewCommand(),
			listCommand(),
			submitCommand(),
			acceptCommand(),
		},
	}
}

func distanceFlag() *cli.Float64Flag {
	return &cli.Float64Flag{
		Name:    "distance",
		Aliases: []string{"d"},
		Value:   pricing.DefaultDistance,
		Usage:   "One-way distance to the tailor",
	}
}

func jsonFlag() *cli.BoolFlag {
	return &cli.BoolFlag{Name: "json", Usage: "Print JSON instead of text"}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate the cost of a single alteration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "item", Aliases: []string{"i"}, Usage: "Clothing item description", Required: true},
			distanceFlag(),
			jsonFlag(),
		},
		Action: func(c *cli.Context) error {
			svc := pricing.NewDefaultService()
			var distance *float64
			if c.IsSet("distance") {
				d := c.Float64("distance")
				distance = &d
			}
			costs, err := svc.Estimate(context.Background(), pricing.EstimateRequest{
				ClothingItem:   c.String("item"),
				DistanceOneWay: distance,
			})
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, costs)
			}
			printCosts(c.App.Writer, c.String("item"), costs)
			return nil
		},
	}
}

func reviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "List sample quotes with their estimated cost",
		Flags: []cli.Flag{distanceFlag(), jsonFlag()},
		Action: func(c *cli.Context) error {
			rows, err := newQuoteService(c.Float64("distance")).Review(c.Context)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(c.App.Writer, "No quotes found. Submit a quote request first.")
				return nil
			}
			for _, r := range rows {
				printCosts(c.App.Writer, r.Quote.Name+" - "+r.Quote.ClothingItem, r.Costs)
			}
			return nil
		},
	}
}

func newQuoteService(distance float64) *quote.Service {
	return quote.NewService(quote.NewSampleSource(), quote.NewNopSink(logger.Get()), pricing.NewDefaultService(), distance)
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List submitted quotes without pricing them",
		Action: func(c *cli.Context) error {
			quotes, err := newQuoteService(pricing.DefaultDistance).List(c.Context)
			if err != nil {
				return err
			}
			for _, q := range quotes {
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%d image(s)\n", q.ID, q.Name, q.ClothingItem, len(q.Images))
			}
			return nil
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Submit a quote request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Customer name", Required: true},
			&cli.StringFlag{Name: "item", Aliases: []string{"i"}, Usage: "Clothing item description", Required: true},
			&cli.StringSliceFlag{Name: "image", Usage: "Image reference, repeatable"},
			&cli.IntSliceFlag{Name: "remove-image", Usage: "Drop the image at this position (0-based), repeatable"},
		},
		Action: func(c *cli.Context) error {
			images, err := pickImages(c.StringSlice("image"), c.IntSlice("remove-image"))
			if err != nil {
				return err
			}
			receipt, err := newQuoteService(pricing.DefaultDistance).Submit(c.Context, quote.Request{
				Name:         c.String("name"),
				ClothingItem: c.String("item"),
				Images:       images,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s (%s)\n", receipt.Message, receipt.QuoteID)
			return nil
		},
	}
}

// pickImages replays the image picker: add every reference, then drop the
// given positions, highest first so earlier positions stay valid.
func pickImages(refs []string, remove []int) ([]string, error) {
	var images []string
	for _, ref := range refs {
		var err error
		if images, err = quote.AddImage(images, ref); err != nil {
			return nil, err
		}
	}
	drop := append([]int(nil), remove...)
	sort.Sort(sort.Reverse(sort.IntSlice(drop)))
	for _, i := range drop {
		var err error
		if images, err = quote.RemoveImage(images, i); err != nil {
			return nil, err
		}
	}
	return images, nil
}

func acceptCommand() *cli.Command {
	return &cli.Command{
		Name:      "accept",
		Usage:     "Accept a listed quote",
		ArgsUsage: "<quote-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("accept needs exactly one quote id, got %d", c.NArg())
			}
			receipt, err := newQuoteService(pricing.DefaultDistance).Accept(c.Context, types.ID(c.Args().First()))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, receipt.Message)
			return nil
		},
	}
}

func printCosts(w io.Writer, title string, costs pricing.CostBreakdown) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  %-30s %10s\n", "Clothing Alteration:", types.GBP(costs.ClothingCost))
	fmt.Fprintf(w, "  %-30s %10s\n", "Transport (Round Trip):", types.GBP(costs.TransportCost))
	fmt.Fprintf(w, "  %-30s %10s\n", "Total Estimated Cost:", types.GBP(costs.Total))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
