package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"partnerline/internal/app"
	"partnerline/internal/db"
	"partnerline/internal/domain"
	"partnerline/internal/export"
	"partnerline/internal/repo"
	"partnerline/internal/sample"
	"partnerline/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "pln",
	Short: "Partnerline CLI",
	Long: `Partnerline tracks partners, projects, and deliverables in a local workspace store.
Core concepts:
- Workspace: the .partnerline directory holding one local database.
- Collections: departments, projects, collaborators (fortune30 + internal), SME partners, SPIs, objectives, initiatives, and sitreps; every record is keyed by id.
- Sample data: 'pln sample generate' builds a referentially consistent dataset; requests above a generator's pool are capped with a notice.
- SPIs: schedule performance items, the tracked deliverables; sitreps are their periodic narrative updates.
- Event log: every generation, adjustment, and clear is recorded; view with 'pln log tail'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		workspace := viper.GetString("workspace")
		if _, err := db.EnsureWorkspace(workspace); err != nil {
			return err
		}
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("PARTNERLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(dbCmd())
	rootCmd.AddCommand(sampleCmd())
	rootCmd.AddCommand(countsCmd())
	rootCmd.AddCommand(partnerCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(spiCmd())
	rootCmd.AddCommand(sitrepCmd())
	rootCmd.AddCommand(objectiveCmd())
	rootCmd.AddCommand(initiativeCmd())
	rootCmd.AddCommand(departmentCmd())
	rootCmd.AddCommand(dataCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(serveCmd())
}

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "db", Short: "Manage the workspace store"}
	cmd.AddCommand(dbInitCmd())
	cmd.AddCommand(dbPathCmd())
	return cmd
}

func dbInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the workspace store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				fmt.Printf("Initialized store at %s\n", db.Path(viper.GetString("workspace")))
				return nil
			})
		},
	}
}

func dbPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the store path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(db.Path(viper.GetString("workspace")))
			return nil
		},
	}
}

func sampleCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sample", Short: "Sample data generation"}
	cmd.AddCommand(sampleGenerateCmd())
	cmd.AddCommand(sampleDefaultsCmd())
	return cmd
}

func sampleGenerateCmd() *cobra.Command {
	var projects, spis, objectives, sitreps, fortune30, internalPartners, smePartners int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample data",
		Long:  "Generates a referentially consistent dataset across every collection. Unset quantities fall back to workspace config, then to built-in defaults; counts above a generator's pool are capped with a notice.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req sample.Request
			set := func(name string, dst **int, v *int) {
				if cmd.Flags().Changed(name) {
					*dst = v
				}
			}
			set("projects", &req.Projects, &projects)
			set("spis", &req.SPIs, &spis)
			set("objectives", &req.Objectives, &objectives)
			set("sitreps", &req.SitReps, &sitreps)
			set("fortune30", &req.Fortune30, &fortune30)
			set("internal-partners", &req.InternalPartners, &internalPartners)
			set("sme-partners", &req.SMEPartners, &smePartners)
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				res, err := a.Coordinator.Generate(ctx, req)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(res)
				}
				renderGenerateResult(os.Stdout, res)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&projects, "projects", 0, "number of projects")
	cmd.Flags().IntVar(&spis, "spis", 0, "number of SPIs")
	cmd.Flags().IntVar(&objectives, "objectives", 0, "number of objectives")
	cmd.Flags().IntVar(&sitreps, "sitreps", 0, "number of sitreps")
	cmd.Flags().IntVar(&fortune30, "fortune30", 0, "number of Fortune-30 partners")
	cmd.Flags().IntVar(&internalPartners, "internal-partners", 0, "number of internal partners")
	cmd.Flags().IntVar(&smePartners, "sme-partners", 0, "number of SME partners")
	return cmd
}

func sampleDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show effective default quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return printJSONOrTable(a.Coordinator.Defaults)
			})
		},
	}
}

func countsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show per-kind record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				counts, err := a.Repos.Counts(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(counts)
				}
				tw := table.NewWriter()
				tw.AppendHeader(table.Row{"Kind", "Count"})
				tw.AppendRow(table.Row{"projects", counts.Projects})
				tw.AppendRow(table.Row{"spis", counts.SPIs})
				tw.AppendRow(table.Row{"objectives", counts.Objectives})
				tw.AppendRow(table.Row{"sitreps", counts.SitReps})
				tw.AppendRow(table.Row{"fortune30", counts.Fortune30})
				tw.AppendRow(table.Row{"internal_partners", counts.InternalPartners})
				tw.AppendRow(table.Row{"sme_partners", counts.SMEPartners})
				tw.AppendRow(table.Row{"initiatives", counts.Initiatives})
				tw.AppendRow(table.Row{"departments", counts.Departments})
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
}

func partnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partner",
		Short: "Manage partners",
		Long:  "Collaborators are Fortune-30, internal, or other partners; SME partners are stored in their own collection and addressed with --type sme.",
	}
	cmd.AddCommand(partnerListCmd())
	cmd.AddCommand(partnerShowCmd())
	cmd.AddCommand(partnerCreateCmd())
	cmd.AddCommand(partnerDeleteCmd())
	return cmd
}

// partnerRepo routes to the collaborators or SME collection by type.
func partnerRepo(a *app.App, partnerType string) repo.Collection[domain.Collaborator] {
	if partnerType == "sme" {
		return a.Repos.SMEPartners
	}
	return a.Repos.Collaborators
}

func partnerListCmd() *cobra.Command {
	var partnerType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				items, err := partnerRepo(a, partnerType).GetAll(ctx)
				if err != nil {
					return err
				}
				if partnerType != "" && partnerType != "sme" {
					filtered := items[:0]
					for _, c := range items {
						if c.Type == partnerType {
							filtered = append(filtered, c)
						}
					}
					items = filtered
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.AppendHeader(table.Row{"ID", "Name", "Type", "Role", "Department"})
				for _, c := range items {
					tw.AppendRow(table.Row{c.ID, c.Name, c.Type, c.Role, c.DepartmentID})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&partnerType, "type", "", "filter by type (fortune30, sme, other)")
	return cmd
}

func partnerShowCmd() *cobra.Command {
	var partnerType string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a partner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				c, ok, err := partnerRepo(a, partnerType).Get(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("partner %s not found", args[0])
				}
				return printJSONOrTable(c)
			})
		},
	}
	cmd.Flags().StringVar(&partnerType, "type", "", "partner type (fortune30, sme, other)")
	return cmd
}

func partnerCreateCmd() *cobra.Command {
	var name, email, role, partnerType, department string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a partner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			c := domain.Collaborator{
				ID:           uuid.New().String(),
				Name:         name,
				Email:        email,
				Role:         role,
				Type:         partnerType,
				DepartmentID: department,
				LastActive:   time.Now().UTC().Format(time.RFC3339),
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := partnerRepo(a, partnerType).Add(ctx, c); err != nil {
					return err
				}
				return printJSONOrTable(c)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "partner name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&role, "role", "", "partner role")
	cmd.Flags().StringVar(&partnerType, "type", "other", "partner type (fortune30, sme, other)")
	cmd.Flags().StringVar(&department, "department", "", "department id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func partnerDeleteCmd() *cobra.Command {
	var partnerType string
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a partner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return partnerRepo(a, partnerType).Delete(ctx, args[0])
			})
		},
	}
	cmd.Flags().StringVar(&partnerType, "type", "", "partner type (fortune30, sme, other)")
	return cmd
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "project", Short: "Manage projects"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				items, err := a.Repos.Projects.GetAll(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.AppendHeader(table.Row{"ID", "Name", "Status", "POC", "Tech Lead", "Department"})
				for _, p := range items {
					tw.AppendRow(table.Row{p.ID, p.Name, p.Status, p.POC, p.TechLead, p.DepartmentID})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	})
	cmd.AddCommand(showCommand("project", func(a *app.App) getter { return getterFor(a.Repos.Projects) }))
	return cmd
}

func spiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spi",
		Short: "Manage SPIs",
		Long:  "SPIs are schedule performance items: tracked deliverables optionally linked to a project and a partner, with sitreps recording their progress.",
	}
	cmd.AddCommand(listCommand("SPIs", func(a *app.App) lister { return listerFor(a.Repos.SPIs) }))
	cmd.AddCommand(showCommand("spi", func(a *app.App) getter { return getterFor(a.Repos.SPIs) }))
	return cmd
}

func sitrepCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sitrep", Short: "Manage sitreps"}
	cmd.AddCommand(listCommand("sitreps", func(a *app.App) lister { return listerFor(a.Repos.SitReps) }))
	cmd.AddCommand(showCommand("sitrep", func(a *app.App) getter { return getterFor(a.Repos.SitReps) }))
	return cmd
}

func objectiveCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "objective", Short: "Manage objectives"}
	cmd.AddCommand(listCommand("objectives", func(a *app.App) lister { return listerFor(a.Repos.Objectives) }))
	cmd.AddCommand(showCommand("objective", func(a *app.App) getter { return getterFor(a.Repos.Objectives) }))
	return cmd
}

func initiativeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "initiative", Short: "Manage initiatives"}
	cmd.AddCommand(listCommand("initiatives", func(a *app.App) lister { return listerFor(a.Repos.Initiatives) }))
	cmd.AddCommand(showCommand("initiative", func(a *app.App) getter { return getterFor(a.Repos.Initiatives) }))
	return cmd
}

func departmentCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "department", Short: "Reference departments"}
	cmd.AddCommand(listCommand("departments", func(a *app.App) lister { return listerFor(a.Repos.Departments) }))
	return cmd
}

func dataCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "data", Short: "Bulk data operations"}
	cmd.AddCommand(dataClearCmd())
	cmd.AddCommand(dataExportCmd())
	return cmd
}

func dataClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear every collection",
		Long:  "Destroys every collection and re-initializes the store to an empty, ready state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.ClearData(ctx); err != nil {
					return err
				}
				fmt.Println("All data cleared.")
				return nil
			})
		},
	}
}

func dataExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every collection as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				snap, err := export.Build(ctx, a.Repos, time.Now())
				if err != nil {
					return err
				}
				if out == "" {
					return export.Write(os.Stdout, snap)
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.Write(f, snap); err != nil {
					return err
				}
				fmt.Printf("Exported to %s\n", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func logCmd() *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Audit event log"}
	log.AddCommand(logTailCmd())
	return log
}

func logTailCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Tail events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				items, err := a.Events.Latest(ctx, n)
				if err != nil {
					return err
				}
				return printJSONOrTable(items)
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of events")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if addr == "" {
					addr = a.Config.Server.Addr
				}
				if basePath == "" {
					basePath = a.Config.Server.BasePath
				}
				handler, err := server.New(server.Config{App: a, BasePath: basePath})
				if err != nil {
					return err
				}
				srv := &http.Server{Addr: addr, Handler: handler}
				go func() {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					srv.Shutdown(shutdownCtx)
				}()
				fmt.Printf("Serving Partnerline API on http://%s%s (OpenAPI at %s/openapi.json, Swagger UI at /docs)\n", addr, basePath, basePath)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "API base path (default from config)")
	return cmd
}

// --- helpers ---

type lister func(ctx context.Context) (any, error)
type getter func(ctx context.Context, id string) (any, bool, error)

func listerFor[T any](col repo.Collection[T]) lister {
	return func(ctx context.Context) (any, error) {
		return col.GetAll(ctx)
	}
}

func getterFor[T any](col repo.Collection[T]) getter {
	return func(ctx context.Context, id string) (any, bool, error) {
		return col.Get(ctx, id)
	}
}

func listCommand(what string, pick func(*app.App) lister) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List " + what,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				items, err := pick(a)(ctx)
				if err != nil {
					return err
				}
				return printJSONOrTable(items)
			})
		},
	}
}

func showCommand(what string, pick func(*app.App) getter) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				v, ok, err := pick(a)(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s %s not found", what, args[0])
				}
				return printJSONOrTable(v)
			})
		},
	}
}

func withApp(ctx context.Context, fn func(context.Context, *app.App) error) error {
	workspace := viper.GetString("workspace")
	a, err := app.Open(ctx, workspace)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// renderGenerateResult prints any quantity notices followed by a table
// of the counts actually persisted.
func renderGenerateResult(w io.Writer, res sample.Result) {
	for _, n := range res.Notices {
		fmt.Fprintln(w, n.String())
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Kind", "Created"})
	tw.AppendRow(table.Row{"projects", res.Realized.Projects})
	tw.AppendRow(table.Row{"spis", res.Realized.SPIs})
	tw.AppendRow(table.Row{"objectives", res.Realized.Objectives})
	tw.AppendRow(table.Row{"sitreps", res.Realized.SitReps})
	tw.AppendRow(table.Row{"fortune30", res.Realized.Fortune30})
	tw.AppendRow(table.Row{"internal_partners", res.Realized.InternalPartners})
	tw.AppendRow(table.Row{"sme_partners", res.Realized.SMEPartners})
	tw.AppendRow(table.Row{"initiatives", res.Initiatives})
	tw.AppendRow(table.Row{"departments", res.Departments})
	fmt.Fprintln(w, tw.Render())
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
