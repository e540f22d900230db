// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mdhender/ipagen"
	"github.com/mdhender/ipagen/config"
	"github.com/mdhender/ipagen/diacritics"
	"github.com/mdhender/ipagen/symdict"
	"github.com/mdhender/ipagen/watcher"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("config", "", "load configuration from file")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "ipagen",
		Short: "TyIPA code generation utility",
		Long:  `Regenerate the TyIPA package's derived source files from their definitions`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("ipagen: version %q\n", ipagen.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdDiacritics())
	cmdRoot.AddCommand(cmdSymdict())
	cmdRoot.AddCommand(cmdAll())
	cmdRoot.AddCommand(cmdPreview())
	cmdRoot.AddCommand(cmdWatch())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the project configuration: the file named by
// --config if given, otherwise ipagen.toml in the working directory if
// it exists, otherwise the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := afero.NewOsFs()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(fs, path)
	}
	if ok, _ := afero.Exists(fs, "ipagen.toml"); ok {
		return config.Load(fs, "ipagen.toml")
	}
	return config.Default(), nil
}

func verboseFlag(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose && !quiet
}

func runDiacritics(cfg *config.Config, verbose bool) error {
	g, err := diacritics.NewGenerator(diacritics.WithVerbose(verbose))
	if err != nil {
		return err
	}
	n, err := g.Run(cfg.Diacritics.Definitions, cfg.Diacritics.Functions, cfg.Diacritics.Manual)
	if err != nil {
		return err
	}
	log.Printf("diacritics: generated %d definitions\n", n)
	return nil
}

func runSymdict(cfg *config.Config, verbose bool) error {
	g, err := symdict.NewGenerator(symdict.WithVerbose(verbose))
	if err != nil {
		return err
	}
	n, err := g.Run(cfg.Symbols.Source, cfg.Symbols.Dictionary)
	if err != nil {
		return err
	}
	log.Printf("symdict: generated %d symbol definitions\n", n)
	return nil
}

func cmdDiacritics() *cobra.Command {
	return &cobra.Command{
		Use:          "diacritics",
		Short:        "regenerate the diacritic functions and their manual listing",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runDiacritics(cfg, verboseFlag(cmd))
		},
	}
}

func cmdSymdict() *cobra.Command {
	return &cobra.Command{
		Use:          "symdict",
		Short:        "regenerate the symbol dictionary",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runSymdict(cfg, verboseFlag(cmd))
		},
	}
}

func cmdAll() *cobra.Command {
	return &cobra.Command{
		Use:          "all",
		Short:        "regenerate every derived file",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose := verboseFlag(cmd)
			if err := runDiacritics(cfg, verbose); err != nil {
				return err
			}
			return runSymdict(cfg, verbose)
		},
	}
}

func cmdPreview() *cobra.Command {
	// U+25CC DOTTED CIRCLE, the conventional diacritic carrier
	placeholder := "◌"
	return &cobra.Command{
		Use:          "preview",
		Short:        "show each diacritic applied to a placeholder glyph",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			loader := diacritics.NewLoader()
			records, err := loader.Load(cfg.Diacritics.Definitions)
			if err != nil {
				return err
			}
			for _, r := range records {
				base := placeholder
				if r.IsTied() {
					base = placeholder + placeholder
				}
				rendered, err := diacritics.Apply(r, base)
				if err != nil {
					return err
				}
				fmt.Printf("%-28s %s\n", r.Name, rendered)
			}
			return nil
		},
	}
}

func cmdWatch() *cobra.Command {
	return &cobra.Command{
		Use:          "watch",
		Short:        "regenerate whenever a definition file changes",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			verbose := verboseFlag(cmd)

			// start from a clean slate before watching
			if err := runDiacritics(cfg, verbose); err != nil {
				return err
			}
			if err := runSymdict(cfg, verbose); err != nil {
				return err
			}

			regenerate := func(changed []string) {
				for _, path := range changed {
					log.Printf("watch: %s changed\n", path)
				}
				if err := runDiacritics(cfg, verbose); err != nil {
					log.Printf("watch: diacritics: %v\n", err)
				}
				if err := runSymdict(cfg, verbose); err != nil {
					log.Printf("watch: symdict: %v\n", err)
				}
			}

			w, err := watcher.New(cfg.Watch.Debounce, cfg.Watch.Exclude, regenerate)
			if err != nil {
				return err
			}
			defer func() {
				_ = w.Close()
			}()
			if err := w.Watch(cfg.Diacritics.Definitions, cfg.Symbols.Source); err != nil {
				return err
			}
			log.Printf("watch: watching %s and %s\n", cfg.Diacritics.Definitions, cfg.Symbols.Source)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			log.Printf("watch: stopping\n")
			return nil
		},
	}
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(ipagen.Version().String())
				return nil
			}
			fmt.Println(ipagen.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
