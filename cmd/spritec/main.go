package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pixelroot32/spritec"
	"github.com/pixelroot32/spritec/grid"
	"github.com/pixelroot32/spritec/palette"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func parseGrid(value string) (int, int, error) {
	parts := strings.Split(strings.ToLower(value), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid %q, expected WxH", value)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseOffset(value string) (int, int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid offset %q, expected X,Y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseSprites(values []string) ([]grid.Region, error) {
	if len(values) == 0 {
		return nil, nil
	}
	regions := make([]grid.Region, 0, len(values))
	for i, value := range values {
		parts := strings.Split(value, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid sprite %q, expected gx,gy,gw,gh", value)
		}
		n := make([]int, 4)
		for j, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid sprite %q: %v", value, err)
			}
			n[j] = v
		}
		regions = append(regions, grid.Region{X: n[0], Y: n[1], W: n[2], H: n[3], Index: i})
	}
	return regions, nil
}

func newCompiler(c *cli.Context) (*spritec.Compiler, *spritec.CompileDB, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var db *spritec.CompileDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = spritec.NewCompileDB(file); err != nil {
			return nil, nil, err
		}
	}

	return spritec.New(db, logger), db, nil
}

func compileOptions(c *cli.Context) (spritec.Options, error) {
	var opts spritec.Options

	mode, err := spritec.ParseMode(c.String("mode"))
	if err != nil {
		return opts, err
	}
	opts.Mode = mode

	if value := c.String("grid"); value != "" {
		if opts.Grid.CellW, opts.Grid.CellH, err = parseGrid(value); err != nil {
			return opts, err
		}
	}

	if value := c.String("offset"); value != "" {
		if opts.Grid.OffsetX, opts.Grid.OffsetY, err = parseOffset(value); err != nil {
			return opts, err
		}
	}

	opts.NamePrefix = c.String("prefix")
	opts.TargetColumns = c.Int("columns")
	opts.Reduce = c.Bool("reduce")

	return opts, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "spritec"
	app.Usage = "PixelRoot32 sprite sheet compiler"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPRITEC_DB"},
			Usage:   "path to compile catalog database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "compile",
			Usage:       "Compile a sprite sheet into a C header",
			Description: "Omitting --grid infers the cell size from the sheet width; omitting --sprite auto-detects sprite regions from pixel opacity.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "grid",
					Usage: "grid cell size WxH, e.g. 16x16",
				},
				&cli.StringFlag{
					Name:  "offset",
					Usage: "grid offset X,Y",
					Value: "0,0",
				},
				&cli.StringSliceFlag{
					Name:  "sprite",
					Usage: "sprite definition gx,gy,gw,gh in grid units, repeatable",
				},
				&cli.StringFlag{
					Name:  "mode",
					Usage: "export mode: layered, 2bpp or 4bpp",
					Value: "layered",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "output header file",
					Value: "sprites.h",
				},
				&cli.StringFlag{
					Name:  "prefix",
					Usage: "name prefix for generated arrays",
				},
				&cli.IntFlag{
					Name:  "columns",
					Usage: "sprite count per row, biases grid inference",
				},
				&cli.BoolFlag{
					Name:  "reduce",
					Usage: "quantize colors down to the mode capacity",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := compileOptions(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				regions, err := parseSprites(c.StringSlice("sprite"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				compiler, db, err := newCompiler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if db != nil {
					defer db.Close()
				}

				res, err := compiler.CompileSheet(c.Args().First(), c.String("out"), regions, opts)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, w := range res.Warnings {
					fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
				}
				fmt.Printf("OK: generated %s (%d sprites, %d colors)\n", c.String("out"), res.Sprites, res.Colors)

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Compile every sprite sheet under a directory",
			Description: "Each .png becomes a sibling .h file; grid and regions are inferred per sheet.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "mode",
					Usage: "export mode: layered, 2bpp or 4bpp",
					Value: "layered",
				},
				&cli.StringFlag{
					Name:  "prefix",
					Usage: "name prefix for generated arrays",
				},
				&cli.BoolFlag{
					Name:  "reduce",
					Usage: "quantize colors down to the mode capacity",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				mode, err := spritec.ParseMode(c.String("mode"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				compiler, db, err := newCompiler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if db != nil {
					defer db.Close()
				}

				opts := spritec.Options{
					Mode:       mode,
					NamePrefix: c.String("prefix"),
					Reduce:     c.Bool("reduce"),
				}

				if err := compiler.Scan(c.Args().First(), opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "palettes",
			Usage: "List the predefined palettes",
			Action: func(c *cli.Context) error {
				for _, name := range palette.Names() {
					colors := palette.Colors(name)
					fmt.Printf("%s (%d colors)\n", name, len(colors))
					if c.Bool("verbose") {
						for i, col := range colors {
							fmt.Printf("  %2d: RGB(%d, %d, %d)\n", i, col.R, col.G, col.B)
						}
					}
				}
				return nil
			},
		},
		{
			Name:      "history",
			Usage:     "Show recent compiles from the catalog database",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Usage: "maximum number of entries to show",
					Value: 20,
				},
			},
			Action: func(c *cli.Context) error {
				if c.String("db") == "" {
					return cli.NewExitError("history requires --db", 1)
				}

				_, db, err := newCompiler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				records, err := db.History(c.Int("limit"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, r := range records {
					fmt.Printf("%s %s %s -> %s (%d sprites, %d colors, %d warnings)\n",
						r.Created.Format("2006-01-02 15:04:05"), r.Mode, r.Input, r.Output, r.Sprites, r.Colors, r.Warnings)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
