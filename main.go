// Package main provides the entry point for the origin-link CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/origin-link/internal/browser"
	"github.com/sgaunet/origin-link/internal/logger"
	"github.com/sgaunet/origin-link/internal/ui"
	"github.com/sgaunet/origin-link/pkg/config"
	"github.com/sgaunet/origin-link/pkg/git"
	"github.com/sgaunet/origin-link/pkg/github"
	"github.com/sgaunet/origin-link/pkg/link"
	"github.com/sgaunet/origin-link/pkg/workspace"
	"github.com/spf13/cobra"
)

var errCopyAndOpen = errors.New("--copy and --open cannot be combined")

// version is set at build time with -ldflags "-X main.version=...".
var version = "development"

var (
	logLevel   string
	remoteName string
	lineSpecs  []string
	pickRemote bool
	copyLink   bool
	openLink   bool
	log        *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "origin-link [flags] <file>",
	Short: "Print the web link of a file and line selection in its remote repository",
	Long: `origin-link builds a shareable link to a file in the web UI of the
repository's remote: GitHub, Bitbucket Cloud or a self-hosted Bitbucket.
Selected lines are added as the host's line anchor.`,
	Example: `  origin-link src/api/async_resource.cc -l 6
  origin-link pom.xml -l 6,10-20,26 --copy
  origin-link README.md --remote upstream --open`,
	Args:         cobra.ExactArgs(1),
	Version:      version,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		err := runOriginLink(cmd, args[0])
		if errors.Is(err, link.ErrNoLink) {
			fmt.Fprintf(os.Stderr, "Unable to build origin link: %v\n", err)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringSliceVarP(&lineSpecs, "lines", "l", nil,
		"Selected lines, 1-based (e.g. 6,10-20,26); may be repeated")
	rootCmd.Flags().StringVarP(&remoteName, "remote", "r", "",
		"Remote to link to (default from config, then origin)")
	rootCmd.Flags().BoolVarP(&pickRemote, "pick", "p", false,
		"Choose the remote interactively")
	rootCmd.Flags().BoolVarP(&copyLink, "copy", "c", false,
		"Copy the link to the clipboard")
	rootCmd.Flags().BoolVarP(&openLink, "open", "o", false,
		"Open the link in the default browser")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.MarkFlagsMutuallyExclusive("copy", "open")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runOriginLink(cmd *cobra.Command, file string) error {
	// Logs stay silent until the configured level is known.
	log = logger.NoLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	log = logger.NewLogger(level)
	if !logger.IsValidLevel(level) {
		log.Warn(fmt.Sprintf("Unknown log level %q, using info", level))
	}
	log.Debug("Configuration loaded successfully")

	repo, err := git.OpenRepository(file)
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}
	repo.SetLogger(log)
	log.Debug("Repository root: " + repo.Root())

	remote, err := chooseRemote(cmd, repo, cfg)
	if err != nil {
		return err
	}

	opts := []workspace.Option{workspace.WithLogger(log)}
	if cfg.APIFallback {
		lookup, err := defaultBranchLookup()
		if err != nil {
			return err
		}
		opts = append(opts, workspace.WithDefaultBranchLookup(lookup))
	}

	ws := workspace.New(repo, remote, file, lineSpecs, opts...)
	url, err := link.FromSource(ws, log)
	if err != nil {
		return err
	}

	action, err := resolveAction(cfg.Action, copyLink, openLink)
	if err != nil {
		return err
	}
	return deliver(action, url)
}

func chooseRemote(cmd *cobra.Command, repo *git.Repository, cfg *config.Config) (string, error) {
	name := cfg.Remote
	if cmd.Flags().Changed("remote") {
		name = remoteName
	}
	if name == "" {
		name = git.DefaultRemote
	}

	if !pickRemote {
		return name, nil
	}

	names, err := repo.ListRemotes()
	if err != nil {
		return "", fmt.Errorf("failed to list remotes: %w", err)
	}

	remotes := make([]ui.Remote, 0, len(names))
	for _, n := range names {
		url, err := repo.GetRemoteURL(n)
		if err != nil {
			log.Debug(fmt.Sprintf("Skipping remote %s: %v", n, err))
			continue
		}
		remotes = append(remotes, ui.Remote{Name: n, URL: url})
	}

	selected, err := ui.NewRemoteSelector().SelectRemote(remotes, name)
	if err != nil {
		return "", err
	}
	log.Debug("Remote selected: " + selected)
	return selected, nil
}

// defaultBranchLookup asks GitHub when a GitHub remote has no usable refs.
// Remotes on other hosts fail the lookup with github.ErrNotGitHub.
func defaultBranchLookup() (git.DefaultBranchLookup, error) {
	client, err := github.NewClient(github.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return client.LookupFromRemote, nil
}

// resolveAction picks what to do with the link. Flags win over the
// configured action.
func resolveAction(configured string, copyFlag, openFlag bool) (string, error) {
	switch {
	case copyFlag && openFlag:
		return "", errCopyAndOpen
	case copyFlag:
		return config.ActionCopy, nil
	case openFlag:
		return config.ActionOpen, nil
	case configured == "":
		return config.ActionPrint, nil
	default:
		return configured, nil
	}
}

func deliver(action, url string) error {
	switch action {
	case config.ActionCopy:
		if err := browser.Copy(url); err != nil {
			return err
		}
		log.Info("Link copied to clipboard: " + url)
	case config.ActionOpen:
		if err := browser.Open(url); err != nil {
			return err
		}
		log.Info("Opened " + url)
	default:
		fmt.Println(url)
	}
	return nil
}
