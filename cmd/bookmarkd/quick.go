package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/econpulse/bookmarkd/internal/config"
	"github.com/econpulse/bookmarkd/internal/localstore"
	"github.com/econpulse/bookmarkd/internal/logger"
)

// newQuickCmd manages the device-local quick-bookmark set from the command
// line. The set lives in a file under the user's config dir, or in Redis
// when BOOKMARKD_REDIS_ADDR is set so several devices can share it.
func newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Manage the quick-bookmark set",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print bookmarked article IDs",
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newQuickStore(cmd)
				if err != nil {
					return err
				}
				for _, id := range s.IDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <article-id>",
			Short: "Toggle an article in or out of the set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newQuickStore(cmd)
				if err != nil {
					return err
				}
				on, err := s.Toggle(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if on {
					fmt.Fprintf(cmd.OutOrStdout(), "bookmarked %s\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the quick-bookmark set",
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newQuickStore(cmd)
				if err != nil {
					return err
				}
				return s.Clear(cmd.Context())
			},
		},
	)

	return cmd
}

func newQuickStore(cmd *cobra.Command) (*localstore.SetStore, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	var slot localstore.Slot
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		slot = localstore.NewRedisSlot(client, "bookmarkd:quick")
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		slot = localstore.NewFileSlot(filepath.Join(dir, "bookmarkd", "quick.json"))
	}

	codec := localstore.NewCodec(slot, log)
	return localstore.NewSetStore(cmd.Context(), codec), nil
}
