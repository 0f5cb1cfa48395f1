package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "judgecli",
		Usage: "command line client for the judge server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Usage: "judge server base url (overrides JUDGE_URL)"},
			&cli.StringFlag{Name: "user", Usage: "user identifier sent with every request"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
			&cli.StringFlag{Name: "lang", Usage: "language id: cpp, c, py, js"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			problemsCmd(),
			showCmd(),
			runCmd(),
			submitCmd(),
			profileCmd(),
			historyCmd(),
			rankingsCmd(),
			themeCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func problemsCmd() *cli.Command {
	return &cli.Command{
		Name:  "problems",
		Usage: "list the problem catalog",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.Catalog.Load(ctx); err != nil {
				if a.Catalog.Len() == 0 {
					return err
				}
				fmt.Fprintln(os.Stderr, "warning: showing cached catalog:", err)
			}

			bold := color.New(color.Bold)
			for _, p := range a.Catalog.Problems() {
				bold.Printf("%4d", p.ID)
				fmt.Printf("  %-40s", p.Title)
				if p.Level != "" {
					fmt.Printf("  %-8s", p.Level)
				}
				if p.Points > 0 {
					fmt.Printf("  %d pts", p.Points)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show one problem statement",
		ArgsUsage: "<problem-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := intArg(cmd, 0, "problem-id")
			if err != nil {
				return err
			}
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.Client.Problem(ctx, id)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Printf("%d. %s\n\n", p.ID, p.Title)
			fmt.Println(p.Statement)
			if p.InputFormat != "" {
				bold.Println("\nInput")
				fmt.Println(p.InputFormat)
			}
			if p.OutputFormat != "" {
				bold.Println("\nOutput")
				fmt.Println(p.OutputFormat)
			}
			if p.SampleInput != "" {
				bold.Println("\nSample input")
				fmt.Println(p.SampleInput)
			}
			if p.SampleOutput != "" {
				bold.Println("\nSample output")
				fmt.Println(p.SampleOutput)
			}
			return nil
		},
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "execute a source file against custom stdin",
		ArgsUsage: "<source-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stdin-file", Usage: "file whose contents are fed to the program"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := loadSource(a, cmd); err != nil {
				return err
			}
			if path := cmd.String("stdin-file"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				a.Session.SetStdin(string(data))
			}

			p, err := a.Run(ctx)
			if err != nil {
				return err
			}
			newRenderer(a).Render(p)
			return nil
		},
	}
}

func submitCmd() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "submit a source file for judging and wait for the verdict",
		ArgsUsage: "<source-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "problem", Aliases: []string{"p"}, Usage: "problem id to submit against"},
			&cli.DurationFlag{Name: "wait", Usage: "maximum time to wait for the verdict", Value: 3 * time.Minute},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Bootstrap(ctx); err != nil {
				return err
			}
			if id := cmd.Int("problem"); id != 0 {
				if err := a.SelectProblem(int(id)); err != nil {
					return err
				}
			}
			if err := loadSource(a, cmd); err != nil {
				return err
			}

			ticket, err := a.Submit(ctx)
			if err != nil {
				return err
			}

			select {
			case <-ticket.Done():
			case <-time.After(cmd.Duration("wait")):
				return fmt.Errorf("gave up waiting for job %s", ticket.JobID)
			}
			return nil
		},
	}
}

func profileCmd() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "show the current user's profile",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.Client.Profile(ctx)
			if err != nil {
				return err
			}
			color.New(color.Bold).Println(p.Username)
			fmt.Printf("rating: %d (total %d)\n", p.Rating, p.TotalRating)
			fmt.Printf("submissions: %d, solved: %d\n", p.SubmissionCount, len(p.AcceptedIDs))
			return nil
		},
	}
}

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "show the current user's submission history",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.Client.History(ctx)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%-6s  %-30s  %-4s  %s\n", string(e.ProblemID), e.ProblemName, e.Language, e.Verdict)
			}
			return nil
		},
	}
}

func rankingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "rankings",
		Usage: "show the leaderboard",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.Client.Rankings(ctx)
			if err != nil {
				return err
			}
			for i, e := range entries {
				fmt.Printf("%3d.  %-24s  %d\n", i+1, e.Username, e.Rating)
			}
			return nil
		},
	}
}

func themeCmd() *cli.Command {
	return &cli.Command{
		Name:      "theme",
		Usage:     "get or set the display theme (light, dark)",
		ArgsUsage: "[theme]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, cleanup, err := buildApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Args().Len() == 0 {
				fmt.Println(a.Prefs.Theme())
				return nil
			}
			theme := cmd.Args().First()
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("unknown theme %q", theme)
			}
			return a.Prefs.SetTheme(theme)
		},
	}
}
