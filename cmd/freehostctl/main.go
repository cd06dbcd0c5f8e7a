package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"freehost/internal/config"
	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/idtoken"
	impl "freehost/internal/service/impl"
	"freehost/internal/store"
	"freehost/pkg/db"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the same database the service uses.
func openStore() (*store.Store, error) {
	cfg := config.Load()
	gdb, err := db.Open(db.Config{DSN: cfg.DatabaseURL})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := store.AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return store.New(gdb), nil
}

var rootCmd = &cobra.Command{
	Use:   "freehostctl",
	Short: "Operator tool for the FreeHost backend",
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		var users []domain.User
		if err := st.DB.Order("seq ASC").Find(&users).Error; err != nil {
			return fmt.Errorf("listing users: %w", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDRIVE")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", u.ID, u.Name, u.Email, u.IsGoogleConnected)
		}
		return tw.Flush()
	},
}

var sitesUser string

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Inspect and publish sites",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites, optionally for one user",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		q := st.DB.Order("seq ASC")
		if sitesUser != "" {
			q = q.Where("user_id = ?", sitesUser)
		}
		var sites []domain.Site
		if err := q.Find(&sites).Error; err != nil {
			return fmt.Errorf("listing sites: %w", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSUBDOMAIN\tSTATUS\tSTORAGE\tSIZE")
		for _, s := range sites {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Subdomain, s.Status, s.StorageProvider, s.Size)
		}
		return tw.Flush()
	},
}

var sitesPublishCmd = &cobra.Command{
	Use:   "publish <site-id>",
	Short: "Run the simulated deployment for a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		publisher := impl.NewPublishServiceImpl(st)
		result, err := publisher.Publish(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("publishing: %w", err)
		}
		if !result.Success {
			return fmt.Errorf("publish failed: site %s not found", args[0])
		}
		fmt.Printf("Published via %s\n%s\n", result.Provider, result.URL)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo user with one site",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		ctx := context.Background()
		signer := idtoken.NewEphemeral("https://accounts.google.com")
		auth := impl.NewAuthServiceImpl(st, signer)
		sites := impl.NewSiteServiceImpl(st)

		user, err := auth.Register(ctx, dto.RegisterRequest{Name: "Demo", Email: "demo@freehost.app"})
		if err != nil {
			return fmt.Errorf("creating demo user: %w", err)
		}
		site, err := sites.CreateSite(ctx, dto.CreateSiteRequest{UserID: user.ID, Name: "Demo Site"})
		if err != nil {
			return fmt.Errorf("creating demo site: %w", err)
		}

		fmt.Printf("User: %s (%s)\n", user.ID, user.Email)
		fmt.Printf("Site: %s https://%s.freehost.app\n", site.ID, site.Subdomain)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	sitesListCmd.Flags().StringVar(&sitesUser, "user", "", "only sites owned by this user id")
	sitesCmd.AddCommand(sitesListCmd, sitesPublishCmd)
	rootCmd.AddCommand(usersCmd, sitesCmd, seedCmd)
}
