package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jorge-barreto/guidebook/internal/catalog"
	"github.com/jorge-barreto/guidebook/internal/config"
	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/export"
	"github.com/jorge-barreto/guidebook/internal/loader"
	"github.com/jorge-barreto/guidebook/internal/markup"
	"github.com/jorge-barreto/guidebook/internal/scaffold"
	"github.com/jorge-barreto/guidebook/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:            "guidebook",
		Usage:           "Help topics and guides for the graph browser",
		Description:     "Run 'guidebook help' to list help topics and 'guidebook guide' to list guides.",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to " + config.FileName + " (default: search upward from cwd)"},
			&cli.BoolFlag{Name: "verbose", Usage: "Log registration details to stderr"},
			&cli.BoolFlag{Name: "plain", Usage: "Print markdown without terminal styling"},
			&cli.IntFlag{Name: "width", Usage: "Wrap width (overrides config)"},
		},
		Commands: []*cli.Command{
			helpCmd(),
			guideCmd(),
			listCmd(),
			snippetsCmd(),
			exportCmd(),
			initCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

type session struct {
	cfg *config.Config
	log *zap.Logger
	cat *catalog.Catalog
}

func open(cmd *cli.Command) (*session, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if w := int(cmd.Int("width")); w > 0 {
		cfg.Width = w
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Build(cfg, log)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, cat: cat}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func (s *session) print(cmd *cli.Command, title string, body markup.Node) error {
	out, err := ux.Render("# "+title+"\n\n"+ux.Markdown(body), ux.Options{
		Width: s.cfg.Width,
		Style: s.cfg.Style,
		Plain: cmd.Bool("plain"),
	})
	if err != nil {
		return fmt.Errorf("rendering %q: %w", title, err)
	}
	fmt.Print(out)
	return nil
}

func helpCmd() *cli.Command {
	return &cli.Command{
		Name:      "help",
		Usage:     "Show a help topic",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			name := cmd.Args().First()
			if name == "" {
				ux.TopicList(os.Stdout, "Help topics", s.cat.Help)
				fmt.Println("Run 'guidebook help <topic>' to read a topic.")
				return nil
			}
			rec, err := s.cat.Resolve(loader.KindHelp, name)
			if err != nil {
				return err
			}
			return s.print(cmd, rec.Title, rec.Body)
		},
	}
}

func guideCmd() *cli.Command {
	return &cli.Command{
		Name:      "guide",
		Usage:     "Show a guide",
		ArgsUsage: "[name]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "slide", Usage: "Show only slide N (1-indexed)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			name := cmd.Args().First()
			if name == "" {
				ux.TopicList(os.Stdout, "Guides", s.cat.Guides)
				fmt.Println("Run 'guidebook guide <name>' to read a guide.")
				return nil
			}
			rec, err := s.cat.Resolve(loader.KindGuide, name)
			if err != nil {
				return err
			}
			slides := docs.Slides(rec)
			if len(slides) == 0 {
				return s.print(cmd, rec.Title, rec.Body)
			}

			from, to := 0, len(slides)
			if n := int(cmd.Int("slide")); n != 0 {
				if n < 0 || n > len(slides) {
					return fmt.Errorf("--slide %d out of range (guide %q has %d slides)", n, name, len(slides))
				}
				from, to = n-1, n
			}
			for i := from; i < to; i++ {
				ux.SlideHeader(os.Stdout, rec.Title, i, len(slides))
				if err := s.print(cmd, rec.Title, slides[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{Name: "kind", Usage: "Restrict to help or guide"}
}

// kinds returns the kinds selected by --kind, help first.
func kinds(cmd *cli.Command) ([]loader.Kind, error) {
	k := cmd.String("kind")
	if k == "" {
		return []loader.Kind{loader.KindHelp, loader.KindGuide}, nil
	}
	kind, err := loader.ParseKind(k)
	if err != nil {
		return nil, err
	}
	return []loader.Kind{kind}, nil
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List help topics and guides",
		Flags: []cli.Flag{
			kindFlag(),
			&cli.StringFlag{Name: "category", Usage: "Only records in this category"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			ks, err := kinds(cmd)
			if err != nil {
				return err
			}
			for _, k := range ks {
				reg := s.cat.Registry(k)
				if cmd.IsSet("category") {
					ux.Records(os.Stdout, reg.ListByCategory(cmd.String("category")))
				} else {
					ux.Records(os.Stdout, reg.All())
				}
			}
			return nil
		},
	}
}

func snippetsCmd() *cli.Command {
	return &cli.Command{
		Name:      "snippets",
		Usage:     "Print the runnable examples of a topic or guide",
		ArgsUsage: "<key>",
		Flags:     []cli.Flag{kindFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				return fmt.Errorf("key argument is required")
			}
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			ks, err := kinds(cmd)
			if err != nil {
				return err
			}
			for _, k := range ks {
				rec, err := s.cat.Registry(k).Lookup(key)
				if errors.Is(err, docs.ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				ux.Snippets(os.Stdout, markup.Snippets(rec.Body))
				return nil
			}
			return fmt.Errorf("unknown topic or guide %q; run 'guidebook list' to see what is available (%w)", key, docs.ErrNotFound)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Dump topics and guides as a YAML content file or JSON",
		Flags: []cli.Flag{
			kindFlag(),
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "yaml or json"},
			&cli.StringFlag{Name: "out", Usage: "Write to file instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			ks, err := kinds(cmd)
			if err != nil {
				return err
			}
			var entries []loader.Entry
			for _, k := range ks {
				for _, rec := range s.cat.Registry(k).All() {
					entries = append(entries, loader.FromRecord(k, rec))
				}
			}
			data, err := export.Encode(entries, cmd.String("format"))
			if err != nil {
				return err
			}
			out := cmd.String("out")
			if out == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := export.WriteFile(out, data); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			s.log.Debug("exported records", zap.Int("count", len(entries)), zap.String("path", out))
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a " + config.FileName + " with example content",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}
