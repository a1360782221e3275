package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abrar/astrolearn/internal/favorites"
	"github.com/abrar/astrolearn/internal/store"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage saved topics",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		sortName, _ := cmd.Flags().GetString("sort")

		sort, err := parseSort(sortName)
		if err != nil {
			return err
		}

		st, ctx, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := favorites.NewService(st.FavoriteRepo())
		favs, err := svc.List(ctx, search, sort)
		if err != nil {
			return err
		}

		if len(favs) == 0 {
			fmt.Println("No favorites saved.")
			return nil
		}

		for _, f := range favs {
			fmt.Printf("%-30s  %s\n", f.Name, f.DateAdded.Format("Jan 2, 2006"))
		}
		return nil
	},
}

var favoritesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a saved topic by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ctx, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := favorites.NewService(st.FavoriteRepo())
		fav, err := svc.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if fav == nil {
			return fmt.Errorf("no favorite named %q", args[0])
		}

		if err := svc.Remove(ctx, *fav); err != nil {
			return err
		}
		fmt.Printf("Removed %q.\n", fav.Name)
		return nil
	},
}

func parseSort(name string) (store.Sort, error) {
	switch name {
	case "", "date-desc":
		return store.SortDateDesc, nil
	case "date-asc":
		return store.SortDateAsc, nil
	case "name-asc":
		return store.SortNameAsc, nil
	case "name-desc":
		return store.SortNameDesc, nil
	default:
		return 0, fmt.Errorf("unknown sort %q (want date-desc, date-asc, name-asc or name-desc)", name)
	}
}

func init() {
	favoritesListCmd.Flags().String("search", "", "Filter by name or explanation text")
	favoritesListCmd.Flags().String("sort", "date-desc", "Sort order: date-desc, date-asc, name-asc, name-desc")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesRmCmd)
}
