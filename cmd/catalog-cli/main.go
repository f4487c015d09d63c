package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"artisanhub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type artisanListResponse struct {
	Total int              `json:"total"`
	Items []models.Artisan `json:"items"`
}

type categoryListResponse struct {
	Total int               `json:"total"`
	Items []models.Category `json:"items"`
}

func main() {
	global := flag.NewFlagSet("artisanhub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch args[0] {
	case "categories":
		handleCategories(client, *baseURL)
	case "artisans":
		handleArtisans(client, *baseURL, args[1:])
	case "artisan":
		handleArtisan(client, *baseURL, args[1:])
	case "search":
		handleSearch(client, *baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`usage: artisanhub [-api URL] <command>

commands:
  categories                      list categories
  artisans [-sort KEY] [-verified] list artisans (KEY: rating|name|experience|nearest|verified|response)
  artisan <id>                    show one artisan
  search <term>                   search by name, skill or location`)
}

func handleCategories(client *http.Client, baseURL string) {
	var resp categoryListResponse
	getJSON(client, baseURL+"/categories", &resp)

	for _, c := range resp.Items {
		fmt.Printf("%-12s %-14s %d listed\n", c.ID, c.Name, c.Count)
	}
}

func handleArtisans(client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("artisans", flag.ExitOnError)
	sortKey := fs.String("sort", "", "sort key")
	verified := fs.Bool("verified", false, "verified only")
	_ = fs.Parse(args)

	q := url.Values{}
	if *sortKey != "" {
		q.Set("sort", *sortKey)
	}
	if *verified {
		q.Set("verified", "true")
	}

	endpoint := baseURL + "/artisans"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var resp artisanListResponse
	getJSON(client, endpoint, &resp)
	printArtisans(resp.Items)
}

func handleArtisan(client *http.Client, baseURL string, args []string) {
	if len(args) == 0 {
		log.Fatal("artisan id required")
	}

	var a models.Artisan
	getJSON(client, baseURL+"/artisans/"+url.PathEscape(args[0]), &a)

	fmt.Printf("%s (%s)\n", a.Name, a.ID)
	fmt.Printf("  category:   %s\n", a.CategoryID)
	fmt.Printf("  location:   %s\n", a.Location)
	fmt.Printf("  rating:     %.1f (%d reviews)\n", a.Rating, a.ReviewCount)
	fmt.Printf("  skills:     %s\n", strings.Join(a.Skills, ", "))
	if a.Pricing != nil {
		fmt.Printf("  pricing:    %s%.0f - %s%.0f\n", a.Pricing.Currency, a.Pricing.Min, a.Pricing.Currency, a.Pricing.Max)
	}
	if a.ResponseTime != "" {
		fmt.Printf("  responds in %s\n", a.ResponseTime)
	}
}

func handleSearch(client *http.Client, baseURL string, args []string) {
	if len(args) == 0 {
		log.Fatal("search term required")
	}
	term := strings.Join(args, " ")

	var resp artisanListResponse
	getJSON(client, baseURL+"/search?q="+url.QueryEscape(term), &resp)

	if resp.Total == 0 {
		fmt.Printf("no artisans found matching %q\n", term)
		return
	}
	printArtisans(resp.Items)
}

func printArtisans(items []models.Artisan) {
	for _, a := range items {
		badge := " "
		if a.Verified {
			badge = "*"
		}
		fmt.Printf("%s %-6s %-18s %-12s %.1f  %s\n", badge, a.ID, a.Name, a.CategoryID, a.Rating, a.Location)
	}
}

func getJSON(client *http.Client, endpoint string, out any) {
	resp, err := client.Get(endpoint)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Fatalf("decode response: %v", err)
	}
}
