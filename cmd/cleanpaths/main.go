// Command cleanpaths rewrites stored file paths that carry control
// characters left behind by older uploads. It is a one-shot maintenance
// tool: run it against the same database the API uses.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"programboard/internal/config"
	"programboard/internal/database"
	"programboard/internal/sanitize"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report affected rows without updating them")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	changed, err := cleanPaths(ctx, db, *dryRun)
	if err != nil {
		log.Fatalf("clean paths: %v", err)
	}

	if *dryRun {
		fmt.Printf("%d row(s) would be updated\n", changed)
		return
	}
	fmt.Printf("%d row(s) updated\n", changed)
}

func cleanPaths(ctx context.Context, db *sql.DB, dryRun bool) (int, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, file_path FROM daily_programs`)
	if err != nil {
		return 0, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	type fix struct {
		id      int64
		cleaned string
	}
	var fixes []fix
	for rows.Next() {
		var id int64
		var filePath string
		if err := rows.Scan(&id, &filePath); err != nil {
			return 0, fmt.Errorf("scan program: %w", err)
		}
		cleaned := sanitize.StripControlChars(filePath)
		if cleaned != filePath {
			fixes = append(fixes, fix{id: id, cleaned: cleaned})
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate programs: %w", err)
	}

	if dryRun {
		return len(fixes), nil
	}

	for _, f := range fixes {
		if _, err := db.ExecContext(ctx,
			`UPDATE daily_programs SET file_path = $1 WHERE id = $2`, f.cleaned, f.id); err != nil {
			return 0, fmt.Errorf("update program %d: %w", f.id, err)
		}
	}
	return len(fixes), nil
}
