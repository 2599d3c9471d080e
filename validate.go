package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automoto/nightfall/assets"
	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/leveldata"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check level files for errors",
	Long: `Parse every level of the cycle and report the ones that fail.

Without a directory the --levels directory is checked, or the built-in
levels when that is unset.

Examples:
  nightfall validate
  nightfall validate ./mylevels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var errInvalidLevels = errors.New("some levels are invalid")

func runValidate(cmd *cobra.Command, args []string) error {
	src := levelSource()
	if len(args) == 1 {
		src = assets.NewLevelSource(os.DirFS(args[0]), ".")
	}

	failed := 0
	for i := 0; i < config.Session.LevelCount; i++ {
		name, err := src.Path(i)
		if err == nil {
			var m *leveldata.Map
			if m, err = src.Load(i); err == nil {
				fmt.Printf("  OK    %-20s %dx%d, %d enemies, %d pickups\n",
					name, m.Width, m.Height, len(m.Enemies), len(m.Pickups))
				continue
			}
		}
		failed++
		if name == "" {
			name = fmt.Sprintf("level %d", i)
		}
		fmt.Printf("  FAIL  %-20s %v\n", name, err)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d levels failed\n", failed, config.Session.LevelCount)
		return errInvalidLevels
	}
	fmt.Printf("All %d levels are valid\n", config.Session.LevelCount)
	return nil
}
