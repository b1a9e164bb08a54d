// Command blogadmin is the management surface of the blog data layer: it
// seeds starter content, lists and filters posts the way the admin table
// does, exports registered users to CSV, and reports collection counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"go-blog-app/internal/config"
	"go-blog-app/internal/data"
	"go-blog-app/internal/format"
	"go-blog-app/internal/logger"
	"go-blog-app/internal/storage"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// --- Storage Initialization (runs migrations) ---
	store, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		log.Fatal(err, "Failed to open storage")
	}
	defer store.Close()

	// The admin flag is tab-scoped in the browser; here it lives for the
	// duration of the process.
	ephemeral := storage.NewMemoryStore()
	defer ephemeral.Close()

	layer := data.NewLayer(store, ephemeral, cfg.Admin.Password)
	ctx := context.Background()

	switch os.Args[1] {
	case "seed":
		err = runSeed(ctx, layer, log)
	case "list":
		err = runList(ctx, layer, os.Args[2:])
	case "export-users":
		err = runExportUsers(ctx, layer, log, os.Args[2:])
	case "stats":
		err = runStats(ctx, layer)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err, "Command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: blogadmin <command> [flags]

commands:
  seed          install the starter posts when the collection is empty
  list          list posts (-search, -category, -status filters)
  export-users  write the registered-user CSV export (-o path)
  stats         print collection counts`)
}

func runSeed(ctx context.Context, layer *data.Layer, log logger.Logger) error {
	n, err := layer.Posts.Seed(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("Post collection is not empty, nothing seeded")
		return nil
	}
	log.Info(fmt.Sprintf("Seeded %d starter posts", n))
	return nil
}

func runList(ctx context.Context, layer *data.Layer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "match against title and excerpt")
	category := fs.String("category", "", "category slug filter")
	status := fs.String("status", "", "status filter: draft or published")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *status != "" && !data.PostStatus(*status).Valid() {
		return fmt.Errorf("invalid status %q: want draft or published", *status)
	}

	posts, err := layer.Posts.Query(ctx, data.PostFilter{
		Search:   *search,
		Category: *category,
		Status:   data.PostStatus(*status),
	})
	if err != nil {
		return err
	}
	data.SortByDateDesc(posts)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS\tDATE")
	for _, p := range posts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, format.Category(p.Category), p.Status, format.DateShort(p.Date))
	}
	return w.Flush()
}

func runExportUsers(ctx context.Context, layer *data.Layer, log logger.Logger, args []string) error {
	fs := flag.NewFlagSet("export-users", flag.ExitOnError)
	out := fs.String("o", "", "output path (default: dated filename in the working directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	count, err := layer.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		log.Warn("No users to export")
		return nil
	}

	csv, err := layer.Users.ExportCSV(ctx)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = data.ExportFilename(time.Now())
	}
	if err := os.WriteFile(path, []byte(csv+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	log.Info(fmt.Sprintf("Exported %d users to %s", count, path))
	return nil
}

func runStats(ctx context.Context, layer *data.Layer) error {
	posts, err := layer.Posts.List(ctx)
	if err != nil {
		return err
	}
	users, err := layer.Users.Count(ctx)
	if err != nil {
		return err
	}
	comments, err := layer.Comments.Count(ctx)
	if err != nil {
		return err
	}
	messages, err := layer.Contact.List(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("posts:            %d (%d published)\n", len(posts), len(data.PublishedOnly(posts)))
	fmt.Printf("registered users: %d\n", users)
	fmt.Printf("comments:         %d\n", comments)
	fmt.Printf("contact messages: %d\n", len(messages))
	return nil
}
