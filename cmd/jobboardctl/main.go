package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velja/jobboard-api/internal/models"
	"github.com/velja/jobboard-api/internal/render"
	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/internal/storage"
)

func main() {
	// Command line flags
	list := flag.Bool("list", false, "List all job listings")
	add := flag.Bool("add", false, "Add a new job listing")
	deleteID := flag.String("delete", "", "Delete the listing with the given id")
	title := flag.String("title", "", "Listing title")
	company := flag.String("company", "", "Listing company")
	location := flag.String("location", "", "Listing location")
	description := flag.String("description", "", "Listing description")
	posted := flag.String("posted", "", "Posted date (YYYY-MM-DD, defaults to today)")
	addr := flag.String("addr", "localhost:6379", "Redis address")
	password := flag.String("password", "", "Redis password")
	db := flag.Int("db", 0, "Redis database")

	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr:     *addr,
		Password: *password,
		DB:       *db,
	})
	store := storage.NewRedisStore(client, zap.NewNop())
	defer store.Close()

	svc := services.NewListingService(store)
	ctx := context.Background()

	switch {
	case *list:
		collection, err := svc.List(ctx)
		if err != nil {
			log.Fatalf("Failed to load listings: %v", err)
		}
		printListings(collection)

	case *add:
		listing, _, err := svc.Submit(ctx, services.ListingInput{
			Title:       *title,
			Company:     *company,
			Location:    *location,
			Description: *description,
			PostedDate:  *posted,
		})
		if err != nil {
			pterm.Error.Printf("Failed to add listing: %v\n", err)
			return
		}
		pterm.Success.Printf("listing added (id %s)\n", listing.ID)

	case *deleteID != "":
		if err := svc.Delete(ctx, *deleteID); err != nil {
			pterm.Error.Printf("Failed to delete listing: %v\n", err)
			return
		}
		pterm.Success.Println("listing deleted")

	default:
		flag.Usage()
	}
}

func printListings(collection models.Collection) {
	display := render.Project(collection)
	if display.Empty {
		pterm.Info.Println(display.Message)
		return
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Posted"}}
	for _, row := range display.Rows {
		data = append(data, []string{
			row.ID,
			row.Title,
			row.Company,
			row.Location,
			postedAge(row.PostedDate),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Fatalf("Failed to render table: %v", err)
	}
	pterm.Printf("\n%d listing(s)\n", len(display.Rows))
}

// postedAge renders the posted date as a relative age when it parses,
// falling back to the raw value.
func postedAge(postedDate string) string {
	t, err := time.Parse(models.PostedDateLayout, postedDate)
	if err != nil {
		return postedDate
	}
	return humanize.Time(t)
}
